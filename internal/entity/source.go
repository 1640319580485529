package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Scrapability annotations used by the built-in catalog. Values read from
// disk are not checked against these.
const (
	ScrapabilityEasy   = "Easy"
	ScrapabilityMedium = "Medium"
	ScrapabilityHard   = "Hard"
)

var (
	errMissingName = errors.New("source record has no string \"name\"")
	errNotObject   = errors.New("source record is not an object")
)

// Source is a single ESG news website. Name is the catalog key.
//
// A Source decoded from JSON keeps the object it was decoded from and
// encodes back to exactly that object, unknown keys included. Merges replace
// records whole, so a loaded record is never edited in place.
type Source struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	Region       string `json:"region"`
	Category     string `json:"category"`
	Scrapability string `json:"scrapability"`
	Notes        string `json:"notes"`

	raw json.RawMessage
}

// sourceFields has the same JSON shape as Source without its methods.
type sourceFields struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	Region       string `json:"region"`
	Category     string `json:"category"`
	Scrapability string `json:"scrapability"`
	Notes        string `json:"notes"`
}

// UnmarshalJSON requires an object with a string "name". The other known
// fields may be missing but must be strings when present. Keys are matched
// exactly, so "Name" or "NAME" are unknown keys like any other.
func (s *Source) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj == nil {
		return errNotObject
	}

	var name *string
	if v, ok := obj["name"]; ok {
		if err := json.Unmarshal(v, &name); err != nil {
			return fmt.Errorf("source field \"name\": %w", err)
		}
	}
	if name == nil {
		return errMissingName
	}

	decoded := Source{Name: *name}
	for key, dst := range map[string]*string{
		"url":          &decoded.URL,
		"region":       &decoded.Region,
		"category":     &decoded.Category,
		"scrapability": &decoded.Scrapability,
		"notes":        &decoded.Notes,
	} {
		v, ok := obj[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("source %q field %q: %w", *name, key, err)
		}
	}
	decoded.raw = append(json.RawMessage(nil), data...)

	*s = decoded
	return nil
}

// MarshalJSON writes the decoded object back unchanged, or the six known
// fields for a record built in code.
func (s Source) MarshalJSON() ([]byte, error) {
	if s.raw != nil {
		return s.raw, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(sourceFields{
		Name:         s.Name,
		URL:          s.URL,
		Region:       s.Region,
		Category:     s.Category,
		Scrapability: s.Scrapability,
		Notes:        s.Notes,
	}); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
