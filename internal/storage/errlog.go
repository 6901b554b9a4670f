package storage

import (
	"fmt"
	"os"
	"time"
)

// ErrorLog appends timestamped lines to the kiosk error log. Logging
// failures are swallowed: the log must never become a failure source
// itself.
type ErrorLog struct {
	Path string
}

func NewErrorLog(path string) *ErrorLog {
	return &ErrorLog{Path: path}
}

func (l *ErrorLog) Logf(format string, args ...any) {
	if l == nil || l.Path == "" {
		return
	}
	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s\n", time.Now().Format("2006-01-02 15:04:05"), fmt.Sprintf(format, args...))
	_, _ = f.WriteString(line)
}
