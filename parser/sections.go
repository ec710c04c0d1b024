package parser

import (
	"fmt"
	"strings"

	"github.com/sj99642/miniasm/service"
)

// Sections holds the raw body text of each of the three required sections.
type Sections struct {
	Meta string
	Data string
	Text string
}

// Section splits normalized text on the literal token "section." (§4.2).
// The remainder of that line names the section; subsequent lines up to the
// next "section." are its body. All of meta/data/text must be present;
// duplicate section names are an error.
func Section(text string, sink service.Sink) (*Sections, error) {
	parts := strings.Split(text, "section.")

	seen := make(map[string]string)
	for _, part := range parts {
		title, body, _ := strings.Cut(part, "\n")
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		if _, dup := seen[title]; dup {
			return nil, NewGlobalError(ErrMissingSection, fmt.Sprintf("duplicate section: %s", title))
		}
		seen[title] = strings.TrimSpace(body)
	}

	for _, name := range []string{"meta", "data", "text"} {
		if _, ok := seen[name]; !ok {
			return nil, NewGlobalError(ErrMissingSection, fmt.Sprintf("no %s section", name))
		}
	}

	result := &Sections{Meta: seen["meta"], Data: seen["data"], Text: seen["text"]}
	sink.Emit(service.Split, result.Meta, result.Data, result.Text)
	return result, nil
}
