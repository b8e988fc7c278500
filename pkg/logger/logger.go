package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Minimal leveled logger used across the CMS backend.
// - zero external deps
// - provides Debugf/Infof/Warnf/Errorf/Fatalf and Init(level)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = map[Level]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelFatal: "fatal",
}

var (
	current atomic.Int32

	outMu sync.Mutex
	out   io.Writer = os.Stdout
)

func init() {
	current.Store(int32(LevelInfo))
}

// ParseLevel maps a level name to a Level. Unknown names fall back to Info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// Init sets the global log level by name. Call early during startup.
func Init(level string) {
	current.Store(int32(ParseLevel(level)))
}

// SetOutput redirects log output. Intended for tests.
func SetOutput(w io.Writer) {
	outMu.Lock()
	out = w
	outMu.Unlock()
}

// LevelString returns the current level as text.
func LevelString() string {
	return levelNames[Level(current.Load())]
}

func logf(l Level, format string, v ...interface{}) {
	if l < Level(current.Load()) {
		return
	}
	line := fmt.Sprintf("%s [%s] %s\n",
		time.Now().Format(time.RFC3339), strings.ToUpper(levelNames[l]), fmt.Sprintf(format, v...))
	outMu.Lock()
	_, _ = io.WriteString(out, line)
	outMu.Unlock()
}

func Debugf(format string, v ...interface{}) { logf(LevelDebug, format, v...) }
func Infof(format string, v ...interface{})  { logf(LevelInfo, format, v...) }
func Warnf(format string, v ...interface{})  { logf(LevelWarn, format, v...) }
func Errorf(format string, v ...interface{}) { logf(LevelError, format, v...) }

func Fatalf(format string, v ...interface{}) {
	logf(LevelFatal, format, v...)
	os.Exit(1)
}

// Single-string helpers for call sites without formatting.
func Debug(v string) { Debugf("%s", v) }
func Info(v string)  { Infof("%s", v) }
func Warn(v string)  { Warnf("%s", v) }
func Error(v string) { Errorf("%s", v) }
