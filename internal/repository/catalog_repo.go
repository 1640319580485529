package repository

import (
	"context"

	"github.com/user/esg-source-catalog/internal/entity"
)

// CatalogRepository loads and stores the catalog document.
type CatalogRepository interface {
	// Load returns the stored document, or an empty one when nothing has been
	// stored yet. A malformed document yields a *ParseError.
	Load(ctx context.Context) (*entity.Document, error)
	// Save replaces the stored document.
	Save(ctx context.Context, doc *entity.Document) error
	// Location describes where the document lives, for display.
	Location() string
}
