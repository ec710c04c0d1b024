// Package assembler glues the parser and encoder packages together into
// a single pure-function pipeline entry point: source text and
// configuration in, bytes or a typed error out, plus an optional event
// trace. The call sequence (normalize -> split -> parse meta/data/text ->
// interpret operands -> record labels -> place addresses -> encode) is
// restated here as a single orchestrator function.
package assembler

import (
	"github.com/sj99642/miniasm/encoder"
	"github.com/sj99642/miniasm/parser"
	"github.com/sj99642/miniasm/service"
)

// Options configures a single assemble invocation. The zero value is
// valid: no event sink (NopSink is used).
type Options struct {
	Filename string // used only for diagnostics; may be empty
	Sink     service.Sink
}

// Result is the outcome of a successful assembly.
type Result struct {
	Bytes        []byte
	Symbols      map[string]uint32
	Config       *parser.Config
	Instructions []parser.Instruction
}

// Assemble runs the full two-pass pipeline (§2) over source text and
// returns the emitted byte-exact image. It fails fast on the first typed
// error (§4.11); no partial output is ever returned alongside an error.
func Assemble(source string, opts Options) (*Result, error) {
	sink := opts.Sink
	if sink == nil {
		sink = service.NopSink
	}

	normalized := parser.Normalize(source, sink)

	sections, err := parser.Section(normalized, sink)
	if err != nil {
		return nil, err
	}

	cfg, err := parser.ParseMeta(sections.Meta, sink)
	if err != nil {
		return nil, err
	}

	dataEntries, nextIndex, err := parser.ParseData(sections.Data, 0, sink)
	if err != nil {
		return nil, err
	}

	textEntries, _, err := parser.ParseText(sections.Text, nextIndex, sink)
	if err != nil {
		return nil, err
	}

	instructions := make([]parser.Instruction, 0, len(dataEntries)+len(textEntries))
	for _, d := range dataEntries {
		instructions = append(instructions, d)
	}
	for _, t := range textEntries {
		instructions = append(instructions, t)
	}

	symbols, err := parser.BuildSymbolTable(instructions, sink)
	if err != nil {
		return nil, err
	}

	if err := parser.PatchAddresses(instructions, symbols); err != nil {
		return nil, err
	}

	enc := encoder.NewEncoder(symbols)
	bytecode, err := enc.EncodeAll(instructions, cfg, sink)
	if err != nil {
		return nil, err
	}

	sink.Emit(service.End, bytesToInts(bytecode))

	return &Result{
		Bytes:        bytecode,
		Symbols:      symbolsMap(symbols, instructions),
		Config:       cfg,
		Instructions: instructions,
	}, nil
}

func bytesToInts(b []byte) []int {
	ints := make([]int, len(b))
	for i, v := range b {
		ints[i] = int(v)
	}
	return ints
}

// symbolsMap re-derives a plain name->address map for callers (tools,
// viewer) that want the resolved symbol table without reaching into the
// parser package's internal representation.
func symbolsMap(symbols *parser.SymbolTable, instructions []parser.Instruction) map[string]uint32 {
	out := make(map[string]uint32)
	for _, instr := range instructions {
		switch v := instr.(type) {
		case *parser.DataEntry:
			if addr, ok := symbols.Lookup(v.Name); ok {
				out[v.Name] = addr
			}
		case *parser.TextEntry:
			if v.Label != "" {
				if addr, ok := symbols.Lookup(v.Label); ok {
					out[v.Label] = addr
				}
			}
		}
	}
	return out
}
