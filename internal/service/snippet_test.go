package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/cashmeredev/berrysnip/internal/apperror"
	"github.com/cashmeredev/berrysnip/internal/model"
	"github.com/cashmeredev/berrysnip/internal/repository"
)

// mockSnippetRepo is an in-memory stand-in for the SQLite store. failWith
// lets tests simulate a storage fault on any operation.
type mockSnippetRepo struct {
	snippets map[int64]*model.Snippet
	nextID   int64
	failWith error
}

func newMockRepo() *mockSnippetRepo {
	return &mockSnippetRepo{snippets: make(map[int64]*model.Snippet)}
}

func (m *mockSnippetRepo) Create(_ context.Context, snippet *model.Snippet) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.nextID++
	snippet.ID = m.nextID
	now := time.Now()
	snippet.CreatedAt = now
	snippet.UpdatedAt = now
	stored := *snippet
	m.snippets[snippet.ID] = &stored
	return nil
}

func (m *mockSnippetRepo) GetByID(_ context.Context, id int64) (*model.Snippet, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	snippet, ok := m.snippets[id]
	if !ok {
		return nil, apperror.NotFound("snippet", id)
	}
	result := *snippet
	return &result, nil
}

func (m *mockSnippetRepo) List(_ context.Context, _ repository.ListOptions) ([]model.Snippet, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	result := make([]model.Snippet, 0, len(m.snippets))
	for _, s := range m.snippets {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockSnippetRepo) Update(_ context.Context, snippet *model.Snippet) error {
	if m.failWith != nil {
		return m.failWith
	}
	existing, ok := m.snippets[snippet.ID]
	if !ok {
		return apperror.NotFound("snippet", snippet.ID)
	}
	snippet.CreatedAt = existing.CreatedAt
	snippet.UpdatedAt = time.Now()
	stored := *snippet
	m.snippets[snippet.ID] = &stored
	return nil
}

func (m *mockSnippetRepo) Delete(_ context.Context, id int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.snippets[id]; !ok {
		return apperror.NotFound("snippet", id)
	}
	delete(m.snippets, id)
	return nil
}

func (m *mockSnippetRepo) DistinctTags(_ context.Context) ([]string, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var fields []string
	for _, s := range m.snippets {
		fields = append(fields, s.Tags)
	}
	return model.DistinctTags(fields), nil
}

func newTestService(repo repository.SnippetRepository) *SnippetService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSnippetService(repo, logger)
}

func TestCreate(t *testing.T) {
	svc := newTestService(newMockRepo())

	snippet, err := svc.Create(context.Background(), "title", "content", "go", "a, b")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if snippet.ID == 0 {
		t.Error("Create() did not assign an id")
	}
	if snippet.Title != "title" || snippet.Content != "content" {
		t.Errorf("Create() stored %+v", snippet)
	}
}

func TestCreate_AllowsEmptyTitle(t *testing.T) {
	// The store does not validate; title rules belong to the front ends.
	svc := newTestService(newMockRepo())

	snippet, err := svc.Create(context.Background(), "", "", "", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if snippet.ID == 0 {
		t.Error("Create() did not assign an id")
	}
}

func TestCreate_StorageFault(t *testing.T) {
	repo := newMockRepo()
	repo.failWith = errors.New("disk full")
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), "t", "c", "", "")
	if err == nil {
		t.Fatal("Create() expected error on storage fault")
	}
	if errors.Is(err, apperror.ErrNotFound) || errors.Is(err, apperror.ErrValidation) {
		t.Errorf("storage fault mapped to a domain error: %v", err)
	}
}

func TestGetByID_InvalidID(t *testing.T) {
	svc := newTestService(newMockRepo())

	_, err := svc.GetByID(context.Background(), 0)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID(0) error = %v, want ErrNotFound", err)
	}
	_, err = svc.GetByID(context.Background(), -5)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID(-5) error = %v, want ErrNotFound", err)
	}
}

func TestUpdate_ReplacesAllFields(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), "old", "old body", "sh", "old")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Update(context.Background(), created.ID, "new", "", "", ""); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	// Wholesale replacement: empty fields overwrite, they do not "keep".
	if found.Title != "new" || found.Content != "" || found.Language != "" || found.Tags != "" {
		t.Errorf("Update() left partial state: %+v", found)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(newMockRepo())

	err := svc.Update(context.Background(), 404, "t", "c", "", "")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(newMockRepo())

	err := svc.Delete(context.Background(), 404)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestDistinctTags(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	if _, err := svc.Create(context.Background(), "one", "x", "", "a, b"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(context.Background(), "two", "x", "", "b, c"); err != nil {
		t.Fatal(err)
	}

	tags, err := svc.DistinctTags(context.Background())
	if err != nil {
		t.Fatalf("DistinctTags() error = %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(tags) != len(want) {
		t.Fatalf("DistinctTags() = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("DistinctTags()[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}
