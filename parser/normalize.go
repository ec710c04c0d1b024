package parser

import (
	"regexp"
	"strings"

	"github.com/sj99642/miniasm/service"
)

var duplicateWhitespace = regexp.MustCompile(`\s+`)

// Normalize strips comments and trims each line, drops blank lines, then
// collapses internal whitespace runs to a single space, in that order
// (§4.1). Line order is preserved; no parsing happens here.
func Normalize(text string, sink service.Sink) string {
	sink.Emit(service.StartText, text)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if idx := strings.IndexByte(line, ';'); idx >= 0 {
			line = line[:idx]
		}
		lines[i] = strings.TrimSpace(line)
	}
	sink.Emit(service.RemoveComments, strings.Join(lines, "\n"))

	kept := lines[:0]
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	lines = kept
	sink.Emit(service.RemoveEmptyLines, strings.Join(lines, "\n"))

	for i, line := range lines {
		lines[i] = duplicateWhitespace.ReplaceAllString(line, " ")
	}
	sink.Emit(service.RemoveDupWspace, strings.Join(lines, "\n"))

	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
