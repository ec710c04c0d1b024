package parser

import (
	"fmt"
	"strings"

	"github.com/sj99642/miniasm/service"
)

// ParseText parses the text section's lines into TextEntry instructions
// (§4.5). startIndex is the running instruction index shared with the data
// section; it returns the entries and the next free index.
func ParseText(body string, startIndex int, sink service.Sink) ([]*TextEntry, int, error) {
	sink.Emit(service.StartProcText)

	var entries []*TextEntry
	index := startIndex

	for lineNo, raw := range strings.Split(body, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		sink.Emit(service.ReadTextLine, line)

		entry, err := parseTextLine(line, index, lineNo+1)
		if err != nil {
			return nil, index, err
		}

		sink.Emit(service.UstdTextLine,
			fmt.Sprintf("Instruction %d. Opcode=%s, type=%s, label=%s, op1=%v, op2=%v",
				index, entry.Mnemonic, entry.dataTypeLabel(), entry.Label, operandString(entry.Op1), operandString(entry.Op2)),
			entry.Label, entry.Mnemonic, entry.dataTypeLabel(), operandString(entry.Op1), operandString(entry.Op2))

		entries = append(entries, entry)
		index++
	}

	return entries, index, nil
}

func operandString(o Operand) string {
	if o == nil {
		return "None"
	}
	return o.String()
}

func (t *TextEntry) dataTypeLabel() string {
	if !t.DataTypeSet {
		return ""
	}
	return t.DataTypeVal.String()
}

func parseTextLine(line string, index, lineNo int) (*TextEntry, error) {
	parts := strings.Fields(line)

	label := ""
	if !IsMnemonic(parts[0]) {
		label = parts[0]
		parts = parts[1:]
	}
	if len(parts) == 0 {
		return nil, NewError(lineNo, ErrUnknownMnemonic, "expected a mnemonic")
	}
	if !IsMnemonic(parts[0]) {
		return nil, NewError(lineNo, ErrUnknownMnemonic, fmt.Sprintf("unknown mnemonic: %s", parts[0]))
	}
	mnemonic := strings.ToUpper(parts[0])
	parts = parts[1:]

	var dtype DataType
	dtypeSet := false
	if len(parts) > 0 {
		if dt, ok := ParseDataType(parts[0]); ok {
			dtype, dtypeSet = dt, true
			parts = parts[1:]
		} else if dt, ok := ParseWidthAlias(parts[0]); ok {
			dtype, dtypeSet = dt, true
			parts = parts[1:]
		}
	}

	if len(parts) > 2 {
		return nil, NewError(lineNo, ErrTooManyOperands, fmt.Sprintf("too many operands on line: %s", line))
	}

	var op1, op2 Operand
	var err error
	if len(parts) >= 1 {
		if op1, err = ClassifyOperand(parts[0], lineNo); err != nil {
			return nil, err
		}
	}
	if len(parts) >= 2 {
		if op2, err = ClassifyOperand(parts[1], lineNo); err != nil {
			return nil, err
		}
	}

	if dtypeSet {
		if err := checkImmediateWidth(op1, dtype, lineNo); err != nil {
			return nil, err
		}
		if err := checkImmediateWidth(op2, dtype, lineNo); err != nil {
			return nil, err
		}
	}

	entry := &TextEntry{
		IndexNum:    index,
		Label:       label,
		Mnemonic:    mnemonic,
		DataTypeSet: dtypeSet,
		DataTypeVal: dtype,
		Op1:         op1,
		Op2:         op2,
		Line:        lineNo,
	}

	if !dtypeSet {
		entry.DataTypeVal = inferDataType(op1, op2)
		entry.DataTypeSet = true
	}

	return entry, nil
}

// checkImmediateWidth rejects an explicit width/type keyword that is too
// narrow for an immediate operand's value, e.g. "MOV 1B eax 65000" — this
// is a ValueOutOfRange error rather than a silent truncation.
func checkImmediateWidth(op Operand, dtype DataType, lineNo int) error {
	imm, ok := op.(*ImmediateOperand)
	if !ok || imm.IsFloat {
		return nil
	}
	if NaturalIntWidth(imm.IntValue) > dtype.Size() {
		return NewError(lineNo, ErrValueOutOfRange,
			fmt.Sprintf("value %d does not fit in declared width %s", imm.IntValue, dtype))
	}
	return nil
}

// inferDataType takes the maximum length of the present operands and maps
// it back to a representative type (§4.5).
func inferDataType(op1, op2 Operand) DataType {
	max := 0
	if op1 != nil && op1.EncodedLength() > max {
		max = op1.EncodedLength()
	}
	if op2 != nil && op2.EncodedLength() > max {
		max = op2.EncodedLength()
	}
	switch max {
	case 1:
		return Char
	case 2:
		return Short
	default:
		return Int
	}
}
