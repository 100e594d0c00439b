package parse

import (
	"reflect"
	"strings"
	"testing"
)

var testSpecs = []SectionSpec{
	{Name: "overall", Keywords: []string{"overall analysis"}, WeakKeywords: []string{"overall"}},
	{Name: "issues", Keywords: []string{"issues found"}, WeakKeywords: []string{"issues"}},
	{Name: "optimizations", Keywords: []string{"optimizations"}, WeakKeywords: []string{"optimization"}},
	{Name: "alternatives", Keywords: []string{"alternative"}},
}

func TestSplitSections(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string][]string
	}{
		{
			name: "two sections with content",
			text: "OVERALL ANALYSIS:\nCorrectness: 8\nStyle: 7\n\nISSUES FOUND:\n- missing base case",
			want: map[string][]string{
				"overall": {"Correctness: 8", "Style: 7"},
				"issues":  {"- missing base case"},
			},
		},
		{
			name: "numbered headers with weak keywords",
			text: "1. Overall\nGood solution.\n2. Issues\n- none",
			want: map[string][]string{
				"overall": {"Good solution."},
				"issues":  {"- none"},
			},
		},
		{
			name: "weak keyword without numeric marker is not a header",
			text: "The overall idea is sound.",
			want: map[string][]string{},
		},
		{
			name: "preamble before first header is dropped",
			text: "Here is my review.\nOverall Analysis\nLooks fine.",
			want: map[string][]string{"overall": {"Looks fine."}},
		},
		{
			name: "no headers at all",
			text: "just a single unlabeled paragraph of feedback",
			want: map[string][]string{},
		},
		{
			name: "header with no body yields no entry",
			text: "Issues Found:",
			want: map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSections(tt.text, testSpecs)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SplitSections() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Re-segmenting a section's own committed lines must produce nothing: content
// lines carry no headers, so nothing can leak into another section.
func TestSplitSectionsIdempotence(t *testing.T) {
	text := "Overall Analysis:\nCorrectness score is 9.\nClean loop structure.\n"
	first := SplitSections(text, testSpecs)
	lines, ok := first["overall"]
	if !ok {
		t.Fatalf("expected overall section, got %v", first)
	}

	second := SplitSections(strings.Join(lines, "\n"), testSpecs)
	if len(second) != 0 {
		t.Fatalf("re-segmenting committed lines produced sections: %v", second)
	}
}
