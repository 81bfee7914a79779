// Package log writes the tuinput debug log: one line per event carrying a
// timestamp, level, category and key=value fields.
//
// Nothing is written until InitWithTeaLog succeeds, so programs that only
// import the field packages stay silent.
package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel reads a log_level setting. Case is ignored, "warning" is an
// alias for warn, and an empty string means debug.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	switch name {
	case "":
		return LevelDebug, nil
	case "WARNING":
		return LevelWarn, nil
	}
	for l, n := range levelNames {
		if n == name {
			return Level(l), nil
		}
	}
	return LevelDebug, fmt.Errorf("unknown log level %q (must be debug, info, warn or error)", s)
}

// Category groups related log messages.
type Category string

const (
	CatInput   Category = "input"   // Edit requests applied to a field
	CatBackend Category = "backend" // Event translation in terminal adapters
	CatConfig  Category = "config"  // Configuration loading/saving
	CatState   Category = "state"   // Snapshot persistence and repair
	CatCLI     Category = "cli"     // Command lifecycle
)

// sink is where entries at or above min go.
type sink struct {
	mu  sync.Mutex
	w   io.Writer
	min Level
}

var (
	outMu sync.RWMutex
	out   *sink
)

// InitWithTeaLog opens path through tea.LogToFile and starts writing
// entries at min and above. The returned function closes the file and
// silences the log again.
func InitWithTeaLog(path, prefix string, min Level) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, fmt.Errorf("opening log %s: %w", path, err)
	}
	setSink(&sink{w: f, min: min})

	return func() {
		setSink(nil)
		_ = f.Close()
	}, nil
}

func setSink(s *sink) {
	outMu.Lock()
	out = s
	outMu.Unlock()
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields)
}

// ErrorErr logs at error level with err appended as the "error" field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	value := "<nil>"
	if err != nil {
		value = err.Error()
	}
	write(LevelError, cat, msg, append(fields, "error", value))
}

func write(level Level, cat Category, msg string, fields []any) {
	outMu.RLock()
	s := out
	outMu.RUnlock()
	if s == nil || level < s.min {
		return
	}

	// 2025-12-06T10:45:00 [WARN] [state] message key=value key2=value2
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] [%s] %s", time.Now().Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i < len(fields); i += 2 {
		if i+1 == len(fields) {
			fmt.Fprintf(&sb, " %v=<missing>", fields[i])
			break
		}
		fmt.Fprintf(&sb, " %v=%v", fields[i], fields[i+1])
	}
	sb.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.w, sb.String())
}
