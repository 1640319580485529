package usecase

import "github.com/user/esg-source-catalog/internal/entity"

// MergeStats counts distinct names by what the merge did with them.
type MergeStats struct {
	Added    int // only in incoming
	Replaced int // in both; the incoming record won
	Retained int // only in existing
}

// MergeSources overlays incoming onto existing, keyed by name. A record is
// replaced whole, never field by field, and the later of two records with
// the same name wins.
//
// The result keeps insertion order: existing records stay where they were,
// a replaced record keeps the slot of the name's first occurrence, and new
// names are appended in incoming order.
func MergeSources(existing, incoming []entity.Source) ([]entity.Source, MergeStats) {
	index := make(map[string]int, len(existing)+len(incoming))
	merged := make([]entity.Source, 0, len(existing)+len(incoming))

	put := func(s entity.Source) {
		if i, ok := index[s.Name]; ok {
			merged[i] = s
			return
		}
		index[s.Name] = len(merged)
		merged = append(merged, s)
	}

	for _, s := range existing {
		put(s)
	}
	existingCount := len(merged)

	touched := make(map[string]bool, len(incoming))
	for _, s := range incoming {
		put(s)
		touched[s.Name] = true
	}

	var stats MergeStats
	for name := range touched {
		if index[name] < existingCount {
			stats.Replaced++
		} else {
			stats.Added++
		}
	}
	stats.Retained = existingCount - stats.Replaced
	return merged, stats
}
