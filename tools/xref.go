package tools

import (
	"sort"

	"github.com/sj99642/miniasm/parser"
)

// ReferenceType indicates how a symbol is used at a given instruction.
type ReferenceType int

const (
	RefDefinition ReferenceType = iota // variable or label defined here
	RefBranch                          // used as a jump target
	RefOperand                         // used as an operand of any non-jump mnemonic (MOV/LEA/CMP/arithmetic)
)

func (r ReferenceType) String() string {
	switch r {
	case RefDefinition:
		return "definition"
	case RefBranch:
		return "branch"
	case RefOperand:
		return "operand"
	default:
		return "unknown"
	}
}

// Reference is a single use of a symbol at a given instruction index.
type Reference struct {
	Type  ReferenceType
	Index int
	Line  int
}

// Symbol collects every reference to one name across the program.
type Symbol struct {
	Name       string
	Definition *Reference
	References []*Reference
	IsVariable bool
	Address    uint32
}

// branchMnemonics are mnemonics whose AddressOperand is a control-flow
// target rather than a data reference.
var branchMnemonics = map[string]bool{
	"JMP": true, "JE": true, "JNE": true, "JLT": true,
	"JLE": true, "JGT": true, "JGE": true,
}

// Generate builds a name -> Symbol cross-reference from an already-parsed
// instruction stream and its resolved symbol addresses.
func Generate(instructions []parser.Instruction, addresses map[string]uint32) map[string]*Symbol {
	symbols := make(map[string]*Symbol)

	get := func(name string) *Symbol {
		s, ok := symbols[name]
		if !ok {
			s = &Symbol{Name: name}
			if addr, ok := addresses[name]; ok {
				s.Address = addr
			}
			symbols[name] = s
		}
		return s
	}

	for _, instr := range instructions {
		switch v := instr.(type) {
		case *parser.DataEntry:
			s := get(v.Name)
			s.IsVariable = true
			s.Definition = &Reference{Type: RefDefinition, Index: v.IndexNum, Line: v.Line}
		case *parser.TextEntry:
			if v.Label != "" {
				s := get(v.Label)
				s.Definition = &Reference{Type: RefDefinition, Index: v.IndexNum, Line: v.Line}
			}
			refType := RefOperand
			if branchMnemonics[v.Mnemonic] {
				refType = RefBranch
			}
			for _, op := range []parser.Operand{v.Op1, v.Op2} {
				addr, ok := op.(*parser.AddressOperand)
				if !ok {
					continue
				}
				s := get(addr.Symbol)
				s.References = append(s.References, &Reference{Type: refType, Index: v.IndexNum, Line: v.Line})
			}
		}
	}

	return symbols
}

// SortedNames returns the symbol names in alphabetical order, for
// deterministic report output.
func SortedNames(symbols map[string]*Symbol) []string {
	names := make([]string, 0, len(symbols))
	for name := range symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unreferenced returns variable and label names that are defined but never
// used as an operand elsewhere in the program.
func Unreferenced(symbols map[string]*Symbol) []string {
	var names []string
	for _, name := range SortedNames(symbols) {
		s := symbols[name]
		if s.Definition != nil && len(s.References) == 0 {
			names = append(names, name)
		}
	}
	return names
}
