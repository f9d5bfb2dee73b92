package wm

import (
	"os/exec"
	"syscall"

	"github.com/sirupsen/logrus"
)

// Spawn runs an external command detached from the window manager
// process (spec §6: key/button actions that launch programs). The
// child gets its own session via Setsid so it is detached from the
// window manager's controlling terminal and process group; its parent
// pid is still tilewm's.
func (w *World) Spawn(argv []string) {
	if len(argv) == 0 {
		return
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		logrus.WithError(err).WithField("argv", argv).Warn("wm: spawn failed")
		return
	}
	go cmd.Wait() // reap without blocking the event loop
}
