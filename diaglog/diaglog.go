// diaglog package is where this collection's diagnostics go: the systemd
// journal when there is one, a swappable Fallback writer (stderr out of the
// box) when there is not.
//
//	dbg := diaglog.New("propdb", diaglog.PriDebug)
//	dbg.Println("bucket opened")
//
// Or hand a Writer straight to log.SetOutput.
package diaglog

import (
	"io"
	"log"
	"os"

	"github.com/coreos/go-systemd/journal"
)

// Priority is journald's log level.
type Priority = journal.Priority

// The levels this collection actually uses.
const (
	PriErr     = journal.PriErr
	PriWarning = journal.PriWarning
	PriInfo    = journal.PriInfo
	PriDebug   = journal.PriDebug
)

var _ io.Writer = Writer{} // compile-time interface check

// Fallback takes the lines the journal cannot. Swap it for a buffer in
// tests; set it nil (or set NoFallback) to drop them instead.
var Fallback io.Writer = os.Stderr

// NoFallback drops lines on journal failure instead of writing Fallback.
var NoFallback = false

// swapped out in tests
var (
	journalSend    = journal.Send
	journalEnabled = journal.Enabled
)

// Writer sends each Write to the journal at its Priority. The zero value
// logs at journald's most severe level, you probably want New or an
// explicit Priority.
type Writer struct {
	Priority
}

// Write sends b to the journal, falling back to Fallback when the journal
// is gone or refuses.
func (w Writer) Write(b []byte) (int, error) {
	err := journalSend(string(b), w.Priority, nil)
	if err == nil {
		return len(b), nil
	}
	if NoFallback || Fallback == nil {
		return 0, err
	}
	return Fallback.Write(b)
}

// Enabled reports whether the local systemd journal is taking writes.
func Enabled() bool { return journalEnabled() }

// New returns a ready logger tagged with tag. Timestamps are left to
// journald when it is around, otherwise the usual log flags apply.
func New(tag string, p Priority) *log.Logger {
	flags := log.LstdFlags
	if Enabled() {
		flags = 0
	}
	return log.New(Writer{p}, tag+": ", flags)
}
