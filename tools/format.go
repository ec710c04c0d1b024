// Package tools provides post-assembly inspection utilities: a listing
// formatter, a symbol cross-referencer, and a style linter, all operating
// on an already-parsed instruction stream rather than raw source text.
package tools

import (
	"fmt"
	"strings"

	"github.com/sj99642/miniasm/parser"
)

// FormatStyle selects the column layout used when rendering a listing.
type FormatStyle int

const (
	FormatDefault  FormatStyle = iota // standard column widths
	FormatCompact                     // no operand/address alignment: one space before operands, a tab before the address
	FormatExpanded                    // generous column widths for readability
)

// FormatOptions controls the listing layout.
type FormatOptions struct {
	Style          FormatStyle
	LabelColumn    int
	MnemonicColumn int
	OperandColumn  int
	AddressColumn  int
	AlignOperands  bool
	AlignAddresses bool
}

// DefaultFormatOptions returns the standard listing layout.
func DefaultFormatOptions() *FormatOptions {
	return &FormatOptions{
		Style:          FormatDefault,
		LabelColumn:    0,
		MnemonicColumn: 10,
		OperandColumn:  18,
		AddressColumn:  40,
		AlignOperands:  true,
		AlignAddresses: true,
	}
}

// CompactFormatOptions returns options for compact, single-space listings.
func CompactFormatOptions() *FormatOptions {
	opts := DefaultFormatOptions()
	opts.Style = FormatCompact
	opts.AlignOperands = false
	opts.AlignAddresses = false
	return opts
}

// ExpandedFormatOptions returns options for a wider, more readable listing.
func ExpandedFormatOptions() *FormatOptions {
	opts := DefaultFormatOptions()
	opts.Style = FormatExpanded
	opts.MnemonicColumn = 14
	opts.OperandColumn = 26
	opts.AddressColumn = 50
	return opts
}

// Formatter renders a parsed instruction stream as an aligned listing
// annotated with resolved addresses.
type Formatter struct {
	options *FormatOptions
}

// NewFormatter creates a Formatter with the given options, falling back to
// DefaultFormatOptions if options is nil.
func NewFormatter(options *FormatOptions) *Formatter {
	if options == nil {
		options = DefaultFormatOptions()
	}
	return &Formatter{options: options}
}

// Format renders instructions as a listing, one line per Instruction, with
// addresses resolved from symbols (name -> address, both variables and
// labels, as returned by assembler.Result.Symbols).
func (f *Formatter) Format(instructions []parser.Instruction, symbols map[string]uint32) string {
	var out strings.Builder
	addr := uint32(0)

	for _, instr := range instructions {
		switch v := instr.(type) {
		case *parser.DataEntry:
			f.formatDataEntry(&out, v, symbols)
		case *parser.TextEntry:
			f.formatTextEntry(&out, v, addr)
		}
		addr += uint32(instr.EncodedLength())
	}

	return out.String()
}

func (f *Formatter) formatDataEntry(out *strings.Builder, d *parser.DataEntry, symbols map[string]uint32) {
	line := strings.Builder{}
	line.WriteString(d.Name)
	line.WriteString(":")
	f.padToColumn(&line, f.options.MnemonicColumn)
	line.WriteString("VAR")
	f.padToColumn(&line, f.options.OperandColumn)
	line.WriteString(d.DataTypeVal.String())
	line.WriteString(" ")
	line.WriteString(d.InitialValue)
	if f.options.AlignAddresses {
		f.padToColumn(&line, f.options.AddressColumn)
	} else {
		line.WriteString("\t")
	}
	line.WriteString(fmt.Sprintf("; @0x%08X", symbols[d.Name]))
	out.WriteString(line.String())
	out.WriteString("\n")
}

func (f *Formatter) formatTextEntry(out *strings.Builder, t *parser.TextEntry, addr uint32) {
	line := strings.Builder{}

	if t.Label != "" {
		line.WriteString(t.Label)
		line.WriteString(":")
	}
	f.padToColumn(&line, f.options.MnemonicColumn)
	line.WriteString(t.Mnemonic)

	operands := f.formatOperands(t)
	if operands != "" {
		if f.options.AlignOperands {
			f.padToColumn(&line, f.options.OperandColumn)
		} else {
			line.WriteString(" ")
		}
		line.WriteString(operands)
	}

	if f.options.AlignAddresses {
		f.padToColumn(&line, f.options.AddressColumn)
	} else {
		line.WriteString("\t")
	}
	line.WriteString(fmt.Sprintf("; 0x%08X", addr))

	out.WriteString(line.String())
	out.WriteString("\n")
}

func (f *Formatter) formatOperands(t *parser.TextEntry) string {
	var parts []string
	if t.Op1 != nil {
		parts = append(parts, t.Op1.String())
	}
	if t.Op2 != nil {
		parts = append(parts, t.Op2.String())
	}
	return strings.Join(parts, ", ")
}

func (f *Formatter) padToColumn(sb *strings.Builder, column int) {
	current := sb.Len()
	if current < column {
		sb.WriteString(strings.Repeat(" ", column-current))
	} else if current > column {
		sb.WriteString(" ")
	}
}

// FormatListing is a convenience function using default listing options.
func FormatListing(instructions []parser.Instruction, symbols map[string]uint32) string {
	return NewFormatter(DefaultFormatOptions()).Format(instructions, symbols)
}

// FormatListingWithStyle renders a listing using the column widths for the
// given style.
func FormatListingWithStyle(instructions []parser.Instruction, symbols map[string]uint32, style FormatStyle) string {
	var options *FormatOptions
	switch style {
	case FormatCompact:
		options = CompactFormatOptions()
	case FormatExpanded:
		options = ExpandedFormatOptions()
	default:
		options = DefaultFormatOptions()
	}
	return NewFormatter(options).Format(instructions, symbols)
}
