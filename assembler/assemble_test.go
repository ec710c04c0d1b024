package assembler

import (
	"bytes"
	"testing"
)

func source(meta, data, text string) string {
	return "section.meta\n" + meta + "\nsection.data\n" + data + "\nsection.text\n" + text + "\n"
}

func TestEmptyProgram(t *testing.T) {
	result, err := Assemble(source("", "", ""), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte("mem_amt=4&\x00\x00\x00\x00")
	if !bytes.Equal(result.Bytes, want) {
		t.Errorf("bytes = %v, want %v", result.Bytes, want)
	}
}

func TestSingleVariable(t *testing.T) {
	result, err := Assemble(source("", "x VAR char 5", ""), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	metaLen := len("mem_amt=4&\x00\x00\x00\x00")
	text := result.Bytes[metaLen:]
	// MOV_1B opcode(0x10), operand byte (dest=5<<4 | src=2 => 0x52), 4-byte addr, 1-byte value
	if len(text) != 7 {
		t.Fatalf("text region length = %d, want 7", len(text))
	}
	if text[0] != 0x10 {
		t.Errorf("opcode = 0x%02X, want 0x10", text[0])
	}
	if text[1] != 0x52 {
		t.Errorf("operand byte = 0x%02X, want 0x52", text[1])
	}
	addr := result.Symbols["x"]
	// text_region_size sums encoded_length over every instruction, including
	// the variable's own synthetic MOV (7 bytes); the variable region begins
	// right after it, so x's address equals the total instruction length.
	if addr != 7 {
		t.Errorf("address of sole variable = %d, want 7", addr)
	}
	if text[6] != 5 {
		t.Errorf("value byte = %d, want 5", text[6])
	}
}

func TestLabelAndJump(t *testing.T) {
	result, err := Assemble(source("", "", "loop JMP loop"), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	metaLen := len("mem_amt=4&\x00\x00\x00\x00")
	text := result.Bytes[metaLen:]
	want := []byte{0x08, 0x50, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(text, want) {
		t.Errorf("text region = %v, want %v", text, want)
	}
}

func TestWidthFallback(t *testing.T) {
	result, err := Assemble(source("", "", "AND 4B eax ebx"), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	metaLen := len("mem_amt=4&\x00\x00\x00\x00")
	text := result.Bytes[metaLen:]
	if text[0] != 0x52 {
		t.Errorf("opcode = 0x%02X, want 0x52 (AND_4B)", text[0])
	}
}

func TestArithmeticOperandEncoding(t *testing.T) {
	result, err := Assemble(source("", "", "MOV eax [eax*4+ebx]"), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	metaLen := len("mem_amt=4&\x00\x00\x00\x00")
	text := result.Bytes[metaLen:]
	// opcode MOV_4B(0x12) since inferred type is int (arithmetic len 3 maps to int... actually max(op len)=3 -> default int)
	if text[0] != 0x12 {
		t.Errorf("opcode = 0x%02X, want 0x12", text[0])
	}
}

func TestUndefinedSymbolFails(t *testing.T) {
	_, err := Assemble(source("", "", "JMP ghost"), Options{})
	if err == nil {
		t.Fatal("expected error for undefined symbol")
	}
}

func TestMissingSectionFails(t *testing.T) {
	_, err := Assemble("section.meta\nsection.text\n", Options{})
	if err == nil {
		t.Fatal("expected MissingSection error")
	}
}

func TestDuplicateSymbolFails(t *testing.T) {
	_, err := Assemble(source("", "x VAR char 1", "x JMP x"), Options{})
	if err == nil {
		t.Fatal("expected DuplicateSymbol error")
	}
}
