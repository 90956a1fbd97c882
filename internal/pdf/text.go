package pdf

import (
	"sort"
	"strings"
)

// CleanText collapses doubled newlines and trims surrounding whitespace.
// Extracted page text tends to carry blank interline gaps; collapsing keeps
// the output compact without reflowing anything.
func CleanText(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "\n\n", "\n"))
}

// MetadataBlock renders the non-empty metadata entries as a block headed
// "Document Metadata:" with one "- key: value" line per entry, in sorted
// key order. Returns "" when no entry has a value.
func MetadataBlock(md map[string]string) string {
	lines := MetadataLines(md, "- ")
	if len(lines) == 0 {
		return ""
	}
	return "\nDocument Metadata:\n" + strings.Join(lines, "\n")
}

// MetadataLines returns "key: value" lines, each prefixed with prefix, for
// the non-empty metadata entries in sorted key order.
func MetadataLines(md map[string]string, prefix string) []string {
	keys := make([]string, 0, len(md))
	for k, v := range md {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, prefix+k+": "+md[k])
	}
	return lines
}
