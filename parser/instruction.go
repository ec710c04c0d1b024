package parser

import "strconv"

// Instruction is an ordered sequence element: exactly one of DataEntry or
// TextEntry. Both answer EncodedLength from local fields alone; encoding
// to bytes is the Encoder's job (package encoder), since DataEntry needs a
// symbol-table lookup to find its own variable's address.
type Instruction interface {
	Index() int
	EncodedLength() int

	isInstruction()
}

// DataEntry is a declared variable; its first (and only) act is a
// MOV-immediate into its resolved memory address.
type DataEntry struct {
	IndexNum     int
	Name         string
	InitialValue string // raw literal text, parsed by the encoder per DataType
	DataTypeVal  DataType
	Line         int
}

func (d *DataEntry) isInstruction()   {}
func (d *DataEntry) Index() int       { return d.IndexNum }

// valueWidth is the width the synthetic MOV's immediate occupies, chosen
// the same way an ImmediateOperand chooses its width for integral types;
// float is always 4.
func (d *DataEntry) valueWidth(intVal int64) int {
	if d.DataTypeVal == Float {
		return 4
	}
	imm := NewIntImmediate(intVal)
	return imm.Width
}

// IntValue parses InitialValue as a signed integer, for integral types.
func (d *DataEntry) IntValue() (int64, error) {
	return strconv.ParseInt(d.InitialValue, 10, 64)
}

// FloatValue parses InitialValue as a float, for the float type.
func (d *DataEntry) FloatValue() (float64, error) {
	return strconv.ParseFloat(d.InitialValue, 64)
}

// EncodedLength is 6 (MOV opcode + operand-descriptor + 4-byte address)
// plus the immediate's width.
func (d *DataEntry) EncodedLength() int {
	if d.DataTypeVal == Float {
		return 6 + 4
	}
	n, err := d.IntValue()
	if err != nil {
		// Malformed literals are caught by the Data Parser before an
		// instruction is ever built; EncodedLength is never asked to
		// recover from that here.
		return 6 + 4
	}
	return 6 + d.valueWidth(n)
}

// TextEntry is a standard instruction: optional label, mnemonic, resolved
// or inferred data type, and up to two operands.
type TextEntry struct {
	IndexNum    int
	Label       string
	Mnemonic    string
	DataTypeSet bool
	DataTypeVal DataType
	Op1         Operand
	Op2         Operand
	Line        int
}

func (t *TextEntry) isInstruction() {}
func (t *TextEntry) Index() int     { return t.IndexNum }

// EncodedLength is 2 (opcode + operand-descriptor bytes) plus each present
// operand's own length. Symbol-independent because every Address operand
// always encodes as 4 bytes regardless of the eventual value (§4.7).
func (t *TextEntry) EncodedLength() int {
	length := 2
	if t.Op1 != nil {
		length += t.Op1.EncodedLength()
	}
	if t.Op2 != nil {
		length += t.Op2.EncodedLength()
	}
	return length
}
