package kudos

import "strings"

// FormatRecipientList renders a human-readable recipient list:
// one item as-is, two joined with "and", three or more with an Oxford comma
// before the final "and". Duplicate entries are kept as given.
func FormatRecipientList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
