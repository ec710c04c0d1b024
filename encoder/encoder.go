package encoder

import (
	"encoding/binary"
	"fmt"

	"github.com/sj99642/miniasm/parser"
	"github.com/sj99642/miniasm/service"
)

// Encoder serializes the metadata header and the instruction list into the
// final byte-exact image (§4.9, stage 8). It needs the symbol table only
// to look up a DataEntry's own resolved address; TextEntry operands have
// already been patched to numeric addresses by the time encoding runs.
type Encoder struct {
	symbols *parser.SymbolTable
}

// NewEncoder creates an Encoder bound to a completed symbol table.
func NewEncoder(symbols *parser.SymbolTable) *Encoder {
	return &Encoder{symbols: symbols}
}

// EncodeMetadata renders the config record as key=value& pairs in
// insertion order, terminated by four zero bytes (§4.9 "Metadata region").
func (e *Encoder) EncodeMetadata(cfg *parser.Config) []byte {
	var buf []byte
	for _, key := range cfg.Keys() {
		value, _ := cfg.Get(key)
		buf = append(buf, key...)
		buf = append(buf, '=')
		buf = append(buf, value...)
		buf = append(buf, '&')
	}
	buf = append(buf, 0, 0, 0, 0)
	return buf
}

// EncodeInstruction dispatches to the DataEntry or TextEntry encoder.
func (e *Encoder) EncodeInstruction(instr parser.Instruction) ([]byte, error) {
	switch v := instr.(type) {
	case *parser.DataEntry:
		return e.encodeDataEntry(v)
	case *parser.TextEntry:
		return e.encodeTextEntry(v)
	default:
		return nil, NewEncodingError(-1, fmt.Sprintf("unknown instruction type %T", instr))
	}
}

// encodeDataEntry emits the synthetic MOV-immediate for a declared
// variable (§4.9 "Instruction encoding — DataEntry").
func (e *Encoder) encodeDataEntry(d *parser.DataEntry) ([]byte, error) {
	addr, ok := e.symbols.Lookup(d.Name)
	if !ok {
		return nil, WrapEncodingError(d.Line, parser.NewError(d.Line, parser.ErrUndefinedSymbol, fmt.Sprintf("undefined symbol: %s", d.Name)))
	}

	var widthAlias string
	switch d.DataTypeVal {
	case parser.Char, parser.UChar:
		widthAlias = "1B"
	case parser.Short, parser.UShort:
		widthAlias = "2B"
	default:
		widthAlias = "4B"
	}
	opcode, ok := opcodes["MOV_"+widthAlias]
	if !ok {
		return nil, WrapEncodingError(d.Line, fmt.Errorf("no MOV opcode for width %s", widthAlias))
	}

	var immediate *parser.ImmediateOperand
	if d.DataTypeVal == parser.Float {
		fv, err := d.FloatValue()
		if err != nil {
			return nil, WrapEncodingError(d.Line, err)
		}
		immediate = parser.NewFloatImmediate(fv)
	} else {
		iv, err := d.IntValue()
		if err != nil {
			return nil, WrapEncodingError(d.Line, err)
		}
		immediate = parser.NewIntImmediate(iv)
	}

	destDesignation := 5 // Address
	operandByte := byte(destDesignation<<4) | byte(immediate.Designation())

	addrBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(addrBytes, addr)

	valueBytes, err := immediate.EncodeBytes()
	if err != nil {
		return nil, WrapEncodingError(d.Line, err)
	}

	out := []byte{opcode, operandByte}
	out = append(out, addrBytes...)
	out = append(out, valueBytes...)

	if len(out) != d.EncodedLength() {
		return nil, WrapEncodingError(d.Line, fmt.Errorf("encoded length mismatch for %s: got %d want %d", d.Name, len(out), d.EncodedLength()))
	}
	return out, nil
}

// encodeTextEntry performs opcode selection (§4.9) and operand encoding
// for a regular instruction.
func (e *Encoder) encodeTextEntry(t *parser.TextEntry) ([]byte, error) {
	dtypeName := t.DataTypeVal.String()
	widthAlias := t.DataTypeVal.WidthAliasFor()

	opcode, ok := lookupOpcode(t.Mnemonic, dtypeName, widthAlias)
	if !ok {
		return nil, WrapEncodingError(t.Line, parser.NewError(t.Line, parser.ErrOpcodeTypeMismatch,
			fmt.Sprintf("no opcode for %s with type %s", t.Mnemonic, dtypeName)))
	}

	var op1Designation, op2Designation int
	var op1Bytes, op2Bytes []byte
	var err error

	if t.Op1 != nil {
		op1Designation = t.Op1.Designation()
		if op1Bytes, err = t.Op1.EncodeBytes(); err != nil {
			return nil, WrapEncodingError(t.Line, err)
		}
	}
	if t.Op2 != nil {
		op2Designation = t.Op2.Designation()
		if op2Bytes, err = t.Op2.EncodeBytes(); err != nil {
			return nil, WrapEncodingError(t.Line, err)
		}
	}

	operandByte := byte(op1Designation<<4) | byte(op2Designation)

	out := []byte{opcode, operandByte}
	out = append(out, op1Bytes...)
	out = append(out, op2Bytes...)

	if len(out) != t.EncodedLength() {
		return nil, WrapEncodingError(t.Line, fmt.Errorf("encoded length mismatch: got %d want %d", len(out), t.EncodedLength()))
	}
	return out, nil
}

// EncodeAll serializes the metadata header followed by every instruction,
// concatenated, emitting the conv_meta/conv_instr trace events (§6.3).
func (e *Encoder) EncodeAll(instructions []parser.Instruction, cfg *parser.Config, sink service.Sink) ([]byte, error) {
	out := e.EncodeMetadata(cfg)
	sink.Emit(service.ConvMeta, bytesToInts(out))

	for _, instr := range instructions {
		b, err := e.EncodeInstruction(instr)
		if err != nil {
			return nil, err
		}
		op1, op2 := operandBytesOf(instr)
		if len(b) >= 2 {
			sink.Emit(service.ConvInstr, int(b[0]), int(b[1]), bytesToInts(op1), bytesToInts(op2))
		}
		out = append(out, b...)
	}

	return out, nil
}

func operandBytesOf(instr parser.Instruction) (op1, op2 []byte) {
	switch v := instr.(type) {
	case *parser.TextEntry:
		if v.Op1 != nil {
			op1, _ = v.Op1.EncodeBytes()
		}
		if v.Op2 != nil {
			op2, _ = v.Op2.EncodeBytes()
		}
	case *parser.DataEntry:
		// DataEntry's "operands" (address, immediate) are folded into the
		// single encoded instruction; the trace has no separate op1/op2
		// for it beyond what EncodeInstruction already produced.
	}
	return op1, op2
}

func bytesToInts(b []byte) []int {
	ints := make([]int, len(b))
	for i, v := range b {
		ints[i] = int(v)
	}
	return ints
}
