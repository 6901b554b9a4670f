package player

import (
	"fmt"
	"log"
	"os/exec"
	"sync"
)

// Player launches videos fullscreen through cvlc, detached from the
// kiosk process so the web server never blocks on playback. The flags
// match the cube's portrait display (rotated 270°, 9:16).
type Player struct {
	mu   sync.Mutex
	last *exec.Cmd
}

func New() *Player {
	return &Player{}
}

// Play starts path in a fresh detached cvlc. Any previous playback is
// stopped first so triggers never stack players.
func (p *Player) Play(path string, loop bool) error {
	args := []string{
		"--quiet", "--no-osd", "--no-video-title-show", "--intf", "dummy",
		"--fullscreen", "--video-filter=transform", "--transform-type=270",
		"--aspect-ratio=9:16", "--autoscale",
	}
	if loop {
		args = append([]string{"--loop"}, args...)
	}
	args = append(args, path)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()

	cmd := exec.Command("cvlc", args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	setDetached(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start cvlc: %w", err)
	}
	p.last = cmd

	// Reap the process when playback ends.
	go func() { _ = cmd.Wait() }()

	log.Printf("player: playing %s", path)
	return nil
}

// Stop kills the current playback, if any.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.last != nil && p.last.Process != nil {
		_ = p.last.Process.Kill()
	}
	p.last = nil
}
