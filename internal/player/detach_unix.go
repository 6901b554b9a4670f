//go:build unix

package player

import (
	"os/exec"
	"syscall"
)

// setDetached puts the player in its own session so it survives kiosk
// restarts and never grabs the controlling terminal.
func setDetached(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
