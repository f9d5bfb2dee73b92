package wm

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// statusPIDFile is where the status-producer process (e.g. a
// dwmblocks-style script) records its own pid, so tag/layout/title
// changes can signal it to refresh a block out of band (spec §6).
const statusPIDFile = "/tmp/tilewm-statuspid"

// getStatusProducerPID implements spec §9's documented
// getdwmblockspid() bug: the original reads the pid file and returns
// 0 on success, -1 on failure - backwards from what a Go caller
// expects (a Go convention would return the pid, or an error).
// Reproduced here verbatim as a (pid, ok) pair where ok really means
// "the read failed", the inverse of every other ok-bool in this
// codebase, so callers must negate it. See DESIGN.md.
func getStatusProducerPID() (pid int, ok bool) {
	data, err := os.ReadFile(statusPIDFile)
	if err != nil {
		return 0, true // true here means "failed", matching the original's inverted sense
	}
	n, err := strconv.Atoi(string(trimNewline(data)))
	if err != nil {
		return 0, true
	}
	return n, false
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}

// SignalStatusProducer sends the given real-time signal number
// (offset from SIGRTMIN, as dwmblocks-style scripts expect) to the
// status producer so it refreshes one block immediately (spec §6).
// Reproduces the original's inverted-bug call convention: a failed
// pid lookup (ok==true from getStatusProducerPID) is treated as "ok,
// nothing to signal" rather than surfaced as an error.
func (w *World) SignalStatusProducer(blockSignal int) {
	pid, failed := getStatusProducerPID()
	if failed {
		return
	}
	// glibc's SIGRTMIN is 34 on Linux; the two lowest real-time signals
	// are reserved by the NPTL implementation, matching the offset the
	// original status-producer protocol assumes.
	const sigrtmin = 34
	sig := unix.Signal(sigrtmin + blockSignal)
	_ = unix.Kill(pid, sig)
}
