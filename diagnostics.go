// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

// Severity classifies a diagnostic entry reported by the server.
type Severity int

const (
	// SeverityInfo is an informational entry.
	SeverityInfo Severity = iota
	// SeverityWarning is a warning entry.
	SeverityWarning
	// SeverityError is an error entry.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// DiagnosticEntry is one severity-tagged entry reported by the server for
// a statement. Entries are accumulated, never thrown; consumers query them
// explicitly.
type DiagnosticEntry struct {
	Severity Severity
	Code     int
	SQLState string
	Message  string
}

// diagnosticArena is the cursor-local store for reply diagnostics. It is
// populated from the reply handle once, on first request, and then serves
// all further queries without going back to the transport.
type diagnosticArena struct {
	loaded  bool
	entries []DiagnosticEntry

	affectedRows int64
	lastInsertID int64
	generatedIDs []string
}

// load pulls diagnostic entries and statement counters from the reply.
// Subsequent calls are free.
func (d *diagnosticArena) load(reply Reply) {
	if d.loaded {
		return
	}
	d.entries = reply.Entries()
	d.affectedRows = reply.AffectedRows()
	d.lastInsertID = reply.LastInsertID()
	d.generatedIDs = reply.GeneratedIDs()
	d.loaded = true
	logger.Debugf("diagnostics loaded: %d entries, %d affected rows",
		len(d.entries), d.affectedRows)
}

// count returns the number of loaded entries of the given severity.
func (d *diagnosticArena) count(sev Severity) int {
	n := 0
	for i := range d.entries {
		if d.entries[i].Severity == sev {
			n++
		}
	}
	return n
}

// clear drops the loaded diagnostics so the next request pulls them again.
func (d *diagnosticArena) clear() {
	*d = diagnosticArena{}
}
