// Package model defines the data structures shared by the store and both
// front ends.
package model

import (
	"sort"
	"strings"
	"time"
)

// Snippet is the single persisted record type. Tags is a raw comma-separated
// field stored and edited verbatim; use SplitTags to derive the set view.
//
// The JSON field names match the wire contract of the HTTP API, so a Snippet
// can be encoded directly in responses:
//
//	{"id":3,"title":"...","content":"...","language":"","tags":"go, cli",...}
type Snippet struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Language  string    `json:"language"`
	Tags      string    `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SplitTags splits a raw comma-separated tags field into trimmed, non-blank
// segments. Order follows the field; no deduplication.
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, seg := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(seg); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// DistinctTags returns the set union of tags across the given raw fields,
// sorted lexicographically ascending, case-sensitive.
func DistinctTags(rawFields []string) []string {
	seen := make(map[string]struct{})
	for _, raw := range rawFields {
		for _, t := range SplitTags(raw) {
			seen[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
