package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cashmeredev/berrysnip/internal/apperror"
	"github.com/cashmeredev/berrysnip/internal/model"
	"github.com/cashmeredev/berrysnip/internal/repository"
)

// Compile-time check that *DB implements the repository interface.
var _ repository.SnippetRepository = (*DB)(nil)

const snippetColumns = `id, title, content, language, tags, created_at, updated_at`

// Create inserts a new snippet. The assigned id and both timestamps are
// written back into the struct; created_at == updated_at on a fresh record.
func (db *DB) Create(ctx context.Context, snippet *model.Snippet) error {
	now := time.Now().UTC()
	snippet.CreatedAt = now
	snippet.UpdatedAt = now

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO snippets (title, content, language, tags, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		snippet.Title,
		snippet.Content,
		snippet.Language,
		snippet.Tags,
		snippet.CreatedAt,
		snippet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating snippet: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading inserted id: %w", err)
	}
	snippet.ID = id

	return nil
}

// GetByID retrieves a single snippet, or apperror.ErrNotFound.
func (db *DB) GetByID(ctx context.Context, id int64) (*model.Snippet, error) {
	var snippet model.Snippet

	err := db.conn.QueryRowContext(ctx,
		`SELECT `+snippetColumns+` FROM snippets WHERE id = ?`,
		id,
	).Scan(
		&snippet.ID,
		&snippet.Title,
		&snippet.Content,
		&snippet.Language,
		&snippet.Tags,
		&snippet.CreatedAt,
		&snippet.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("snippet", id)
		}
		return nil, fmt.Errorf("sqlite: getting snippet %d: %w", id, err)
	}

	return &snippet, nil
}

// List retrieves snippets, newest update first, ties broken by insertion
// order. Both filters are LIKE substring matches, composed with AND.
//
// The tag filter matches against the whole raw tags field, so filtering for
// "py" also returns records tagged "python". This mirrors the original wire
// behavior; clients rely on it.
func (db *DB) List(ctx context.Context, opts repository.ListOptions) ([]model.Snippet, error) {
	query := `SELECT ` + snippetColumns + ` FROM snippets WHERE 1=1`
	var args []any

	if opts.Search != "" {
		query += ` AND (title LIKE ? OR content LIKE ? OR tags LIKE ?)`
		pattern := "%" + opts.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if opts.Tag != "" {
		query += ` AND tags LIKE ?`
		args = append(args, "%"+opts.Tag+"%")
	}

	query += ` ORDER BY updated_at DESC, id ASC`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing snippets: %w", err)
	}
	defer rows.Close()

	snippets := []model.Snippet{}
	for rows.Next() {
		var s model.Snippet
		if err := rows.Scan(
			&s.ID, &s.Title, &s.Content, &s.Language, &s.Tags,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning snippet row: %w", err)
		}
		snippets = append(snippets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating snippets: %w", err)
	}

	return snippets, nil
}

// Update replaces all mutable fields and refreshes updated_at. created_at is
// immutable. Returns apperror.ErrNotFound if the id does not exist.
func (db *DB) Update(ctx context.Context, snippet *model.Snippet) error {
	snippet.UpdatedAt = time.Now().UTC()

	res, err := db.conn.ExecContext(ctx,
		`UPDATE snippets
		 SET title = ?, content = ?, language = ?, tags = ?, updated_at = ?
		 WHERE id = ?`,
		snippet.Title,
		snippet.Content,
		snippet.Language,
		snippet.Tags,
		snippet.UpdatedAt,
		snippet.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating snippet %d: %w", snippet.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("snippet", snippet.ID)
	}

	return nil
}

// Delete removes a snippet permanently. Its id is never reused.
func (db *DB) Delete(ctx context.Context, id int64) error {
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM snippets WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting snippet %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("snippet", id)
	}

	return nil
}

// DistinctTags returns every distinct trimmed non-blank tag across all
// records, sorted ascending. The raw comma-separated fields come out of SQL;
// splitting and deduplication happen in model.DistinctTags.
func (db *DB) DistinctTags(ctx context.Context) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT DISTINCT tags FROM snippets WHERE tags != ''`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing tag fields: %w", err)
	}
	defer rows.Close()

	var fields []string
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("sqlite: scanning tags field: %w", err)
		}
		fields = append(fields, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating tag fields: %w", err)
	}

	return model.DistinctTags(fields), nil
}
