package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sj99642/miniasm/service"
)

func parseIntLiteral(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func parseFloatLiteral(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ParseData parses the data section's `NAME VAR TYPE INITIAL` lines into
// DataEntry instructions (§4.4). startIndex is the running instruction
// index (data entries and text entries share one sequence); it returns the
// entries and the next free index.
func ParseData(body string, startIndex int, sink service.Sink) ([]*DataEntry, int, error) {
	sink.Emit(service.StartProcData)

	var entries []*DataEntry
	index := startIndex

	for lineNo, raw := range strings.Split(body, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		sink.Emit(service.ReadDataLine, line)

		nameAndRest := strings.SplitN(line, "VAR", 2)
		if len(nameAndRest) != 2 {
			return nil, index, NewError(lineNo+1, ErrMalformedData, fmt.Sprintf("missing VAR keyword: %s", line))
		}
		name := strings.TrimSpace(nameAndRest[0])
		rest := strings.Fields(strings.TrimSpace(nameAndRest[1]))
		if name == "" {
			return nil, index, NewError(lineNo+1, ErrMalformedData, fmt.Sprintf("missing variable name: %s", line))
		}
		if len(rest) < 2 {
			return nil, index, NewError(lineNo+1, ErrMalformedData, fmt.Sprintf("missing type or initial value: %s", line))
		}
		typeTok, initial := rest[0], rest[1]

		dtype, ok := ParseDataType(typeTok)
		if !ok {
			return nil, index, NewError(lineNo+1, ErrUnknownType, fmt.Sprintf("unrecognized data type: %s", typeTok))
		}

		if dtype == Float {
			if _, err := parseFloatLiteral(initial); err != nil {
				return nil, index, NewError(lineNo+1, ErrMalformedData, fmt.Sprintf("invalid float literal: %s", initial))
			}
		} else {
			if _, err := parseIntLiteral(initial); err != nil {
				return nil, index, NewError(lineNo+1, ErrMalformedData, fmt.Sprintf("invalid integer literal: %s", initial))
			}
		}

		sink.Emit(service.UstdDataLine,
			fmt.Sprintf("Variable '%s' has type '%s' and initial value '%s'", name, dtype, initial),
			name, dtype.String(), initial)

		entries = append(entries, &DataEntry{
			IndexNum:     index,
			Name:         name,
			InitialValue: initial,
			DataTypeVal:  dtype,
			Line:         lineNo + 1,
		})
		index++
	}

	return entries, index, nil
}
