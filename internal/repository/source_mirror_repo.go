package repository

import (
	"context"

	"github.com/user/esg-source-catalog/internal/entity"
)

// SourceMirrorRepository keeps a queryable copy of the catalog.
type SourceMirrorRepository interface {
	// UpsertAll inserts or replaces every source of doc, keyed by name.
	UpsertAll(ctx context.Context, doc *entity.Document) error
	// Count returns the number of mirrored sources, including names the
	// document no longer carries.
	Count(ctx context.Context) (int, error)
}
