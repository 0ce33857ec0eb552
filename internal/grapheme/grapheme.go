// Package grapheme holds the grapheme-cluster helpers used when editing
// character names.
package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// DropLast removes the final grapheme cluster of text, so a backspace never
// leaves half of a combined character behind.
func DropLast(text string) string {
	clusters := Split(text)
	if len(clusters) == 0 {
		return ""
	}
	return strings.Join(clusters[:len(clusters)-1], "")
}
