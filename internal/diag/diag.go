// SPDX-License-Identifier: MPL-2.0

// Package diag defines the structured diagnostics sink the catalog engine
// reports through. The engine never writes to stderr or aborts the process
// itself; every constructing component receives a Sink explicitly and emits
// records describing non-fatal failures for the embedding layer to render.
package diag

const (
	// SeverityInfo indicates an informational record.
	SeverityInfo Severity = "info"
	// SeverityWarning indicates a recoverable problem.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal error the engine degraded around.
	SeverityError Severity = "error"
)

type (
	// Severity represents a diagnostic level.
	Severity string

	// Record is one structured diagnostic. Records are handed to a Sink
	// rather than printed, for a consistent rendering policy.
	Record struct {
		// Severity is the diagnostic level.
		Severity Severity
		// Code is a machine-readable identifier (e.g., "metadata_unreadable").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the file path associated with this record (optional).
		Path string
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}

	// Sink accepts diagnostic records. Implementations must not panic and
	// must tolerate records with empty optional fields.
	Sink interface {
		Emit(Record)
	}
)

// Discard is a Sink that drops every record.
type Discard struct{}

// Emit implements Sink.
func (Discard) Emit(Record) {}

// Recorder is a Sink for tests: it retains every emitted record.
type Recorder struct {
	Records []Record
}

// Emit implements Sink.
func (r *Recorder) Emit(rec Record) {
	r.Records = append(r.Records, rec)
}

// ByCode returns the recorded diagnostics carrying the given code.
func (r *Recorder) ByCode(code string) []Record {
	var out []Record
	for _, rec := range r.Records {
		if rec.Code == code {
			out = append(out, rec)
		}
	}
	return out
}
