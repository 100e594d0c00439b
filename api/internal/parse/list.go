package parse

import "strings"

const itemMarkers = "-•*0123456789. "

// Items extracts discrete entries from prose containing bullets, numbers or
// dashes. A marker line starts a new item; any other non-empty line is joined
// to the open item with a space (wrapped text); a plain line with no open
// item starts an implicit one. Order is preserved and nothing is de-duplicated.
func Items(text string) []string {
	var items []string
	current := ""

	flush := func() {
		if s := strings.TrimSpace(current); s != "" {
			items = append(items, s)
		}
		current = ""
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case startsItem(line):
			flush()
			current = strings.TrimLeft(line, itemMarkers)
		case current != "":
			current += " " + line
		default:
			current = line
		}
	}
	flush()

	return items
}

func startsItem(line string) bool {
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*") {
		return true
	}
	// Numbered items: a leading digit with a period within the first three
	// characters, e.g. "1. ..." or "10. ...".
	if line[0] >= '0' && line[0] <= '9' {
		head := line
		if len(head) > 3 {
			head = head[:3]
		}
		return strings.Contains(head, ".")
	}
	return false
}
