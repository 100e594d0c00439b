package parse

import (
	"strconv"
	"strings"
)

// Score scans digit runs left to right and returns the first one whose value
// lies in 1..10. Lines like "Correctness Score: 9/10" therefore yield 9,
// while "Correctness Score: 15" yields nothing and the caller keeps its
// default.
func Score(line string) (int, bool) {
	for i := 0; i < len(line); {
		if line[i] < '0' || line[i] > '9' {
			i++
			continue
		}
		j := i
		for j < len(line) && line[j] >= '0' && line[j] <= '9' {
			j++
		}
		if n, err := strconv.Atoi(line[i:j]); err == nil && n >= 1 && n <= 10 {
			return n, true
		}
		i = j
	}
	return 0, false
}

// ComplexityNotation captures big-O notation from a line: the substring
// starting at a case-insensitive "o(" through the next closing parenthesis,
// with the original casing preserved.
func ComplexityNotation(line string) (string, bool) {
	lower := strings.ToLower(line)
	start := strings.Index(lower, "o(")
	if start < 0 {
		return "", false
	}
	end := strings.IndexByte(line[start:], ')')
	if end < 0 {
		return "", false
	}
	return line[start : start+end+1], true
}
