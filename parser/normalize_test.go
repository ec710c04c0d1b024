package parser

import (
	"testing"

	"github.com/sj99642/miniasm/service"
)

func TestNormalizeStripsCommentsAndWhitespace(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"comment stripped", "MOV eax 5 ; set eax", "MOV eax 5"},
		{"blank lines dropped", "a\n\n\nb", "a\nb"},
		{"collapses internal whitespace", "MOV    eax     5", "MOV eax 5"},
		{"trims outer whitespace", "   MOV eax 5   ", "MOV eax 5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in, service.NopSink)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizationIdempotence(t *testing.T) {
	text := "  MOV   eax  5 ; comment\n\nJMP loop\n"
	once := Normalize(text, service.NopSink)
	twice := Normalize(once, service.NopSink)
	if once != twice {
		t.Errorf("normalize not idempotent: %q != %q", once, twice)
	}
}

func TestCommentStrippingEquivalence(t *testing.T) {
	line := "MOV eax 5"
	withComment := Normalize(line+"; anything", service.NopSink)
	without := Normalize(line, service.NopSink)
	if withComment != without {
		t.Errorf("normalize(%q) = %q, want %q", line+"; anything", withComment, without)
	}
}

func TestNormalizeEmitsCheckpoints(t *testing.T) {
	sink := &service.SliceSink{}
	Normalize("MOV eax 5 ; c\n\n", sink)

	labels := make(map[string]bool)
	for _, e := range sink.Events {
		labels[e.Label] = true
	}
	for _, want := range []string{service.StartText, service.RemoveComments, service.RemoveEmptyLines, service.RemoveDupWspace} {
		if !labels[want] {
			t.Errorf("missing checkpoint %s", want)
		}
	}
}
