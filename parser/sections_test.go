package parser

import (
	"testing"

	"github.com/sj99642/miniasm/service"
)

func TestSectionRequiresAllThree(t *testing.T) {
	_, err := Section("section.meta\nmem_amt=4\nsection.data\nsection.text\n", service.NopSink)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = Section("section.meta\nmem_amt=4\nsection.text\n", service.NopSink)
	if err == nil {
		t.Fatal("expected MissingSection error for absent data section")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != ErrMissingSection {
		t.Fatalf("expected ErrMissingSection, got %v", err)
	}
}

func TestSectionRejectsDuplicates(t *testing.T) {
	_, err := Section("section.meta\nsection.meta\nsection.data\nsection.text\n", service.NopSink)
	if err == nil {
		t.Fatal("expected error for duplicate section")
	}
}

func TestSectionSplitsBodies(t *testing.T) {
	sections, err := Section("section.meta\nmem_amt=8\nsection.data\nx VAR char 1\nsection.text\nHLT\n", service.NopSink)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sections.Meta != "mem_amt=8" {
		t.Errorf("meta = %q", sections.Meta)
	}
	if sections.Data != "x VAR char 1" {
		t.Errorf("data = %q", sections.Data)
	}
	if sections.Text != "HLT" {
		t.Errorf("text = %q", sections.Text)
	}
}
