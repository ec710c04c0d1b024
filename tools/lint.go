package tools

import (
	"fmt"

	"github.com/sj99642/miniasm/parser"
)

// LintLevel is the severity of a lint finding.
type LintLevel int

const (
	LintWarning LintLevel = iota // best-practice violation, not an error
	LintInfo                     // style suggestion
)

func (l LintLevel) String() string {
	switch l {
	case LintWarning:
		return "warning"
	case LintInfo:
		return "info"
	default:
		return "unknown"
	}
}

// LintIssue is a single finding produced by Lint.
type LintIssue struct {
	Level   LintLevel
	Line    int
	Message string
	Code    string
}

func (i *LintIssue) String() string {
	return fmt.Sprintf("line %d: %s: %s [%s]", i.Line, i.Level, i.Message, i.Code)
}

// LintOptions controls which checks Lint runs.
type LintOptions struct {
	CheckUnusedSymbols bool
	CheckUppercase     bool // flag mnemonics that aren't upper-case
}

// DefaultLintOptions returns the default check set.
func DefaultLintOptions() *LintOptions {
	return &LintOptions{
		CheckUnusedSymbols: true,
		CheckUppercase:     true,
	}
}

// Lint runs style checks over an already-parsed instruction stream and its
// resolved symbol addresses, returning every finding.
func Lint(instructions []parser.Instruction, addresses map[string]uint32, opts *LintOptions) []*LintIssue {
	if opts == nil {
		opts = DefaultLintOptions()
	}

	var issues []*LintIssue

	if opts.CheckUnusedSymbols {
		symbols := Generate(instructions, addresses)
		for _, name := range Unreferenced(symbols) {
			s := symbols[name]
			line := 0
			if s.Definition != nil {
				line = s.Definition.Line
			}
			kind := "label"
			if s.IsVariable {
				kind = "variable"
			}
			issues = append(issues, &LintIssue{
				Level:   LintWarning,
				Line:    line,
				Message: fmt.Sprintf("%s %q is never referenced", kind, name),
				Code:    "UNUSED_SYMBOL",
			})
		}
	}

	if opts.CheckUppercase {
		for _, instr := range instructions {
			t, ok := instr.(*parser.TextEntry)
			if !ok {
				continue
			}
			if !isUpper(t.Mnemonic) {
				issues = append(issues, &LintIssue{
					Level:   LintInfo,
					Line:    t.Line,
					Message: fmt.Sprintf("mnemonic %q is not upper-case", t.Mnemonic),
					Code:    "MNEMONIC_CASE",
				})
			}
		}
	}

	return issues
}

func isUpper(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
	}
	return true
}
