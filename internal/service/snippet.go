// Package service is the shared surface both front ends call. It owns no
// HTTP or terminal concerns: ids and field values in, snippets and domain
// errors out, with structured logging around mutations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cashmeredev/berrysnip/internal/apperror"
	"github.com/cashmeredev/berrysnip/internal/model"
	"github.com/cashmeredev/berrysnip/internal/repository"
)

type SnippetService struct {
	repo   repository.SnippetRepository
	logger *slog.Logger
}

func NewSnippetService(repo repository.SnippetRepository, logger *slog.Logger) *SnippetService {
	return &SnippetService{
		repo:   repo,
		logger: logger,
	}
}

// Create stores a new snippet and returns it with its assigned id and
// timestamps. No field validation happens here: the store accepts anything,
// and each front end enforces its own rules (the web UI defaults an absent
// title, the TUI refuses a blank one).
func (s *SnippetService) Create(ctx context.Context, title, content, language, tags string) (*model.Snippet, error) {
	snippet := &model.Snippet{
		Title:    title,
		Content:  content,
		Language: language,
		Tags:     tags,
	}

	if err := s.repo.Create(ctx, snippet); err != nil {
		s.logger.Error("failed to create snippet",
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating snippet: %w", err)
	}

	s.logger.Info("snippet created",
		slog.Int64("id", snippet.ID),
		slog.String("title", snippet.Title),
	)

	return snippet, nil
}

// GetByID returns the snippet or apperror.ErrNotFound.
func (s *SnippetService) GetByID(ctx context.Context, id int64) (*model.Snippet, error) {
	if id <= 0 {
		return nil, apperror.NotFound("snippet", id)
	}
	return s.repo.GetByID(ctx, id)
}

// List returns snippets matching the optional search term and tag filter,
// most recently updated first.
func (s *SnippetService) List(ctx context.Context, search, tag string) ([]model.Snippet, error) {
	snippets, err := s.repo.List(ctx, repository.ListOptions{Search: search, Tag: tag})
	if err != nil {
		s.logger.Error("failed to list snippets", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing snippets: %w", err)
	}
	return snippets, nil
}

// Update replaces every mutable field of the record wholesale and refreshes
// updated_at. There are no partial patches: callers submit the full new
// state. Returns apperror.ErrNotFound for a missing id.
func (s *SnippetService) Update(ctx context.Context, id int64, title, content, language, tags string) error {
	if id <= 0 {
		return apperror.NotFound("snippet", id)
	}

	snippet := &model.Snippet{
		ID:       id,
		Title:    title,
		Content:  content,
		Language: language,
		Tags:     tags,
	}

	if err := s.repo.Update(ctx, snippet); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return err
		}
		s.logger.Error("failed to update snippet",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("updating snippet: %w", err)
	}

	s.logger.Info("snippet updated", slog.Int64("id", id), slog.String("title", title))
	return nil
}

// Delete removes the snippet permanently. Returns apperror.ErrNotFound for a
// missing id.
func (s *SnippetService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperror.NotFound("snippet", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return err
		}
		s.logger.Error("failed to delete snippet",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("deleting snippet: %w", err)
	}

	s.logger.Info("snippet deleted", slog.Int64("id", id))
	return nil
}

// DistinctTags returns the sorted set of all tags across all records.
func (s *SnippetService) DistinctTags(ctx context.Context) ([]string, error) {
	tags, err := s.repo.DistinctTags(ctx)
	if err != nil {
		s.logger.Error("failed to collect tags", slog.String("error", err.Error()))
		return nil, fmt.Errorf("collecting tags: %w", err)
	}
	return tags, nil
}
