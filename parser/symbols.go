package parser

import (
	"fmt"

	"github.com/sj99642/miniasm/service"
)

// SymbolTable maps every variable and label name to its final 32-bit
// absolute address in the emitted image. It is built in a single pass and
// is immutable thereafter (§3 "Symbol Table").
type SymbolTable struct {
	addresses map[string]uint32
}

// Lookup returns a symbol's address and whether it was found.
func (st *SymbolTable) Lookup(name string) (uint32, bool) {
	addr, ok := st.addresses[name]
	return addr, ok
}

// varSlot records a declared variable's offset within the variable region
// and its data type, used to compute its size.
type varSlot struct {
	offset int
	dtype  DataType
}

// BuildSymbolTable performs the Symbol Layout pass (§4.7): a single
// sequential walk over the instruction list computing each variable's
// offset, each label's instruction-start address, and the combined symbol
// table. encoded_length is required to be symbol-independent, which is
// what lets this run in one sweep (§4.7 rationale).
func BuildSymbolTable(instructions []Instruction, sink service.Sink) (*SymbolTable, error) {
	sink.Emit(service.StartLvDetect)

	varOffset := 0
	varTable := make(map[string]varSlot)
	labelTable := make(map[string]int)
	claimed := make(map[string]bool) // detects a name used as both variable and label, or twice

	for _, instr := range instructions {
		switch v := instr.(type) {
		case *DataEntry:
			if claimed[v.Name] {
				return nil, NewError(v.Line, ErrDuplicateSymbol, fmt.Sprintf("duplicate symbol: %s", v.Name))
			}
			claimed[v.Name] = true
			varTable[v.Name] = varSlot{offset: varOffset, dtype: v.DataTypeVal}
			sink.Emit(service.FoundVar, v.Name, varOffset, v.DataTypeVal.String())
			varOffset += v.DataTypeVal.Size()

		case *TextEntry:
			sink.Emit(service.FoundLabel, v.Label, v.IndexNum)
			if v.Label != "" {
				if claimed[v.Label] {
					return nil, NewError(v.Line, ErrDuplicateSymbol, fmt.Sprintf("duplicate symbol: %s", v.Label))
				}
				claimed[v.Label] = true
				labelTable[v.Label] = v.IndexNum
			}
		}
	}

	textRegionSize := 0
	for _, instr := range instructions {
		textRegionSize += instr.EncodedLength()
	}

	addresses := make(map[string]uint32)
	for name, slot := range varTable {
		addresses[name] = uint32(textRegionSize + slot.offset)
	}
	for name, idx := range labelTable {
		addresses[name] = uint32(instructionStartAddress(instructions, idx))
	}

	sink.Emit(service.MemOffsets, addresses)

	return &SymbolTable{addresses: addresses}, nil
}

// instructionStartAddress is the sum of encoded_length over every
// instruction before idx (§4.7).
func instructionStartAddress(instructions []Instruction, idx int) int {
	total := 0
	for _, instr := range instructions {
		if instr.Index() >= idx {
			break
		}
		total += instr.EncodedLength()
	}
	return total
}

// PatchAddresses walks the TextEntry instructions and replaces any operand
// carrying a textual symbol reference with its resolved numeric address
// (§4.8). DataEntry is untouched; its address is looked up by name at
// encode time.
func PatchAddresses(instructions []Instruction, symbols *SymbolTable) error {
	for _, instr := range instructions {
		t, ok := instr.(*TextEntry)
		if !ok {
			continue
		}
		if resolved, err := resolveAddressOperand(t.Op1, symbols, t.Line); err != nil {
			return err
		} else if resolved != nil {
			t.Op1 = resolved
		}
		if resolved, err := resolveAddressOperand(t.Op2, symbols, t.Line); err != nil {
			return err
		} else if resolved != nil {
			t.Op2 = resolved
		}
	}
	return nil
}

func resolveAddressOperand(op Operand, symbols *SymbolTable, line int) (Operand, error) {
	addrOp, ok := op.(*AddressOperand)
	if !ok || addrOp.Resolved {
		return nil, nil
	}
	addr, ok := symbols.Lookup(addrOp.Symbol)
	if !ok {
		return nil, NewError(line, ErrUndefinedSymbol, fmt.Sprintf("undefined symbol: %s", addrOp.Symbol))
	}
	return &AddressOperand{Resolved: true, Address: addr}, nil
}
