//go:build !unix

package player

import "os/exec"

func setDetached(cmd *exec.Cmd) {}
