// Package service defines the domain-level event types the assembly
// pipeline emits when interactive mode is active, and the sinks that
// consume them. It keeps a domain event type (service) separate from the
// transport that fans it out (api): the pipeline never imports a
// transport package directly.
package service

import "encoding/json"

// The fixed pipeline checkpoint labels, in the order the pipeline visits
// them. Not every assembly run emits every label exactly once: the
// per-line labels (read_meta_line, found_var, ...) repeat once per line
// or symbol.
const (
	StartText        = "start_text"
	RemoveComments   = "remove_comments"
	RemoveEmptyLines = "remove_empty_lines"
	RemoveDupWspace  = "remove_dup_wspace"
	Split            = "split"
	StartProcMeta    = "start_proc_meta"
	ReadMetaLine     = "read_meta_line"
	UstdMetaLine     = "ustd_meta_line"
	StartProcData    = "start_proc_data"
	ReadDataLine     = "read_data_line"
	UstdDataLine     = "ustd_data_line"
	StartProcText    = "start_proc_text"
	ReadTextLine     = "read_text_line"
	UstdTextLine     = "ustd_text_line"
	StartLvDetect    = "start_lv_detect"
	FoundVar         = "found_var"
	FoundLabel       = "found_label"
	MemOffsets       = "mem_offsets"
	ConvMeta         = "conv_meta"
	ConvInstr        = "conv_instr"
	End              = "end"
)

// StageEvent is one emitted checkpoint record: a label plus a JSON-array
// payload (§6.3), exactly as the original emits `label json.dumps([...])`.
type StageEvent struct {
	Label   string
	Payload []interface{}
}

// MarshalPayload renders the payload the way the line-oriented sink wants
// it: a JSON array, matching the original's json.dumps([...]) call sites.
func (e StageEvent) MarshalPayload() ([]byte, error) {
	return json.Marshal(e.Payload)
}

// Sink receives pipeline checkpoint events. The core pipeline takes one as
// an explicit parameter (§9 "model it as an explicit trace context
// parameter with a no-op default") rather than consulting a process-wide
// interactive-mode flag.
type Sink interface {
	Emit(label string, payload ...interface{})
}

// nopSink discards every event; it is the default when interactive mode
// is off.
type nopSink struct{}

func (nopSink) Emit(string, ...interface{}) {}

// NopSink is the zero-cost default sink.
var NopSink Sink = nopSink{}

// SliceSink accumulates events in memory, useful for tests and for the
// `return` CLI mode where the caller wants the trace without an external
// writer.
type SliceSink struct {
	Events []StageEvent
}

func (s *SliceSink) Emit(label string, payload ...interface{}) {
	s.Events = append(s.Events, StageEvent{Label: label, Payload: payload})
}

// FuncSink adapts a plain function to Sink, the same way an
// io.Writer can be adapted to a single emit call.
type FuncSink func(label string, payload ...interface{})

func (f FuncSink) Emit(label string, payload ...interface{}) {
	f(label, payload...)
}
