package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/user/esg-source-catalog/internal/entity"
	"github.com/user/esg-source-catalog/internal/repository"
)

// Sink receives the catalog after it has been saved.
type Sink interface {
	Name() string
	Publish(ctx context.Context, doc *entity.Document) error
}

type mirrorSink struct {
	name   string
	repo   repository.SourceMirrorRepository
	logger *zap.Logger
}

// NewMirrorSink publishes the catalog by upserting it into repo.
func NewMirrorSink(name string, repo repository.SourceMirrorRepository, logger *zap.Logger) Sink {
	return &mirrorSink{name: name, repo: repo, logger: logger}
}

func (s *mirrorSink) Name() string {
	return s.name
}

func (s *mirrorSink) Publish(ctx context.Context, doc *entity.Document) error {
	if err := s.repo.UpsertAll(ctx, doc); err != nil {
		return err
	}

	rows, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count mirrored sources: %w", err)
	}
	s.logger.Info("Catalog mirrored",
		zap.String("sink", s.name),
		zap.Int("upserted", len(doc.Sources)),
		zap.Int("rows", rows),
	)
	return nil
}
