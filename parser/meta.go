package parser

import (
	"fmt"
	"strings"

	"github.com/sj99642/miniasm/service"
)

// ParseMeta interprets the meta section's key=value lines into a Config
// layered over the built-in defaults (§4.3). A later line for the same
// key overwrites the earlier value without moving its position, matching
// the original's dict.update semantics (SPEC_FULL §4).
func ParseMeta(body string, sink service.Sink) (*Config, error) {
	sink.Emit(service.StartProcMeta)

	cfg := NewConfig()
	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		sink.Emit(service.ReadMetaLine, line)

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, NewGlobalError(ErrMalformedMeta, fmt.Sprintf("malformed meta line: %s", line))
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		sink.Emit(service.UstdMetaLine,
			fmt.Sprintf("Config item %s has value %s", key, value), key, value)

		cfg.Set(key, value)
	}
	return cfg, nil
}
