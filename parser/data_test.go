package parser

import (
	"testing"

	"github.com/sj99642/miniasm/service"
)

func TestParseDataSingleVariable(t *testing.T) {
	entries, next, err := ParseData("x VAR char 5", 0, service.NopSink)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Name != "x" || e.DataTypeVal != Char || e.InitialValue != "5" {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.EncodedLength() != 7 {
		t.Errorf("encoded length = %d, want 7", e.EncodedLength())
	}
	if next != 1 {
		t.Errorf("next index = %d, want 1", next)
	}
}

func TestParseDataMultipleVariablesContinueIndex(t *testing.T) {
	entries, next, err := ParseData("x VAR char 5\ny VAR int 1000", 0, service.NopSink)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 || entries[0].IndexNum != 0 || entries[1].IndexNum != 1 {
		t.Fatalf("unexpected indices: %+v", entries)
	}
	if next != 2 {
		t.Errorf("next = %d, want 2", next)
	}
}

func TestParseDataMissingVarKeyword(t *testing.T) {
	_, _, err := ParseData("x char 5", 0, service.NopSink)
	if err == nil {
		t.Fatal("expected MalformedData error")
	}
	if err.(*Error).Kind != ErrMalformedData {
		t.Errorf("kind = %v", err.(*Error).Kind)
	}
}

func TestParseDataUnknownType(t *testing.T) {
	_, _, err := ParseData("x VAR blob 5", 0, service.NopSink)
	if err == nil {
		t.Fatal("expected UnknownType error")
	}
	if err.(*Error).Kind != ErrUnknownType {
		t.Errorf("kind = %v", err.(*Error).Kind)
	}
}
