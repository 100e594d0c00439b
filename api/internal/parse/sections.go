package parse

import "strings"

// SectionSpec names one logical section of a narrative response and the
// header keywords that open it. Keywords trigger on their own; WeakKeywords
// only count when the line also carries a numeric marker like "1.", as
// corroborating evidence, never as standalone triggers.
type SectionSpec struct {
	Name         string
	Keywords     []string
	WeakKeywords []string
}

// SplitSections scans text line by line and groups non-empty lines under the
// most recently matched section header. Header lines themselves are not kept.
// Text before the first header is dropped; if no header ever matches, the
// result is empty and the caller falls back to defaults.
func SplitSections(text string, specs []SectionSpec) map[string][]string {
	sections := make(map[string][]string)

	current := ""
	var buf []string
	commit := func() {
		if current != "" && len(buf) > 0 {
			sections[current] = append(sections[current], buf...)
		}
		buf = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if name, ok := matchHeader(line, specs); ok {
			commit()
			current = name
			continue
		}
		if current != "" {
			buf = append(buf, line)
		}
	}
	commit()

	return sections
}

func matchHeader(line string, specs []SectionSpec) (string, bool) {
	lower := strings.ToLower(line)
	for _, spec := range specs {
		for _, kw := range spec.Keywords {
			if strings.Contains(lower, kw) {
				return spec.Name, true
			}
		}
		if !hasNumericMarker(line) {
			continue
		}
		for _, kw := range spec.WeakKeywords {
			if strings.Contains(lower, kw) {
				return spec.Name, true
			}
		}
	}
	return "", false
}

// hasNumericMarker reports whether the line contains a digit immediately
// followed by a period, as in "1." or "2.".
func hasNumericMarker(line string) bool {
	for i := 0; i+1 < len(line); i++ {
		if line[i] >= '0' && line[i] <= '9' && line[i+1] == '.' {
			return true
		}
	}
	return false
}
