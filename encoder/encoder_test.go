package encoder

import (
	"testing"

	"github.com/sj99642/miniasm/parser"
	"github.com/sj99642/miniasm/service"
)

func TestEncodeMetadataInsertionOrder(t *testing.T) {
	cfg := parser.NewConfig()
	cfg.Set("extra", "1")
	enc := NewEncoder(&parser.SymbolTable{})
	got := enc.EncodeMetadata(cfg)
	want := []byte("mem_amt=4&extra=1&\x00\x00\x00\x00")
	if string(got) != string(want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeLengthMatchesEncodedLength(t *testing.T) {
	dataEntries, next, err := parser.ParseData("x VAR int 70000", 0, service.NopSink)
	if err != nil {
		t.Fatalf("ParseData: %v", err)
	}
	textEntries, _, err := parser.ParseText("MOV eax x", next, service.NopSink)
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}

	var instructions []parser.Instruction
	for _, d := range dataEntries {
		instructions = append(instructions, d)
	}
	for _, tt := range textEntries {
		instructions = append(instructions, tt)
	}

	symbols, err := parser.BuildSymbolTable(instructions, service.NopSink)
	if err != nil {
		t.Fatalf("BuildSymbolTable: %v", err)
	}
	if err := parser.PatchAddresses(instructions, symbols); err != nil {
		t.Fatalf("PatchAddresses: %v", err)
	}

	enc := NewEncoder(symbols)
	for _, instr := range instructions {
		b, err := enc.EncodeInstruction(instr)
		if err != nil {
			t.Fatalf("EncodeInstruction: %v", err)
		}
		if len(b) != instr.EncodedLength() {
			t.Errorf("len(encode(I)) = %d, want EncodedLength() = %d", len(b), instr.EncodedLength())
		}
	}
}

func TestOpcodeSelectionPrecedence(t *testing.T) {
	cases := []struct {
		mnemonic, dtype, width string
		want                   byte
	}{
		{"HLT", "int", "4B", 0x00},       // bare mnemonic wins
		{"CMP", "float", "4B", 0x07},     // mnemonic_datatype
		{"MOV", "char", "1B", 0x10},      // width alias fallback
	}
	for _, tc := range cases {
		got, ok := lookupOpcode(tc.mnemonic, tc.dtype, tc.width)
		if !ok {
			t.Fatalf("lookupOpcode(%s,%s,%s) not found", tc.mnemonic, tc.dtype, tc.width)
		}
		if got != tc.want {
			t.Errorf("lookupOpcode(%s,%s,%s) = 0x%02X, want 0x%02X", tc.mnemonic, tc.dtype, tc.width, got, tc.want)
		}
	}
}

func TestOpcodeTypeMismatch(t *testing.T) {
	_, ok := lookupOpcode("CMP", "bogus", "9B")
	if ok {
		t.Fatal("expected lookup to fail for unmapped mnemonic/type/width combination")
	}
}
