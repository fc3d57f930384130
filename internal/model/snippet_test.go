package model

import (
	"reflect"
	"testing"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single", "go", []string{"go"}},
		{"spaced", " go , cli ", []string{"go", "cli"}},
		{"blank segments", " , c,, ", []string{"c"}},
		{"case preserved", "Go,go", []string{"Go", "go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitTags(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitTags(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDistinctTags(t *testing.T) {
	got := DistinctTags([]string{"a, b", "b, c", " , c,, "})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctTags() = %v, want %v", got, want)
	}
}

func TestDistinctTags_Empty(t *testing.T) {
	if got := DistinctTags(nil); len(got) != 0 {
		t.Errorf("DistinctTags(nil) = %v, want empty", got)
	}
}

func TestDistinctTags_CaseSensitive(t *testing.T) {
	got := DistinctTags([]string{"Python, python"})
	want := []string{"Python", "python"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctTags() = %v, want %v", got, want)
	}
}
