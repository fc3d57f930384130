package repository

import (
	"context"

	"github.com/cashmeredev/berrysnip/internal/model"
)

// ListOptions filters a listing. Both filters are substring matches and
// compose with logical AND; empty strings mean "no filter".
type ListOptions struct {
	// Search matches against title, content, or the raw tags field.
	Search string
	// Tag matches against the raw tags field as a substring, not a
	// per-tag exact match. See the sqlite implementation.
	Tag string
}

// SnippetRepository is the Record Store contract. Both front ends reach it
// through the service layer; the SQLite implementation is the only one in the
// tree, the interface exists for the mock used in service tests.
type SnippetRepository interface {
	Create(ctx context.Context, snippet *model.Snippet) error
	GetByID(ctx context.Context, id int64) (*model.Snippet, error)
	List(ctx context.Context, opts ListOptions) ([]model.Snippet, error)
	Update(ctx context.Context, snippet *model.Snippet) error
	Delete(ctx context.Context, id int64) error
	DistinctTags(ctx context.Context) ([]string, error)
}
