package logger

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/fatih/color"
)

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var (
	mu      sync.Mutex
	std     = log.New(os.Stdout, "", log.LstdFlags)
	current = InfoLevel

	debugPrintf = color.New(color.FgCyan).SprintfFunc()
	infoPrintf  = color.New(color.FgGreen).SprintfFunc()
	warnPrintf  = color.New(color.FgYellow).SprintfFunc()
	errorPrintf = color.New(color.FgRed).SprintfFunc()
)

// SetLevel adjusts the minimum level that gets logged.
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	current = level
}

// SetOutput redirects log output; colors are disabled for non-terminal writers.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	std = log.New(w, "", log.LstdFlags)
	if f, ok := w.(*os.File); !ok || (f != os.Stdout && f != os.Stderr) {
		color.NoColor = true
	}
}

func Debug(format string, v ...interface{}) {
	if current <= DebugLevel {
		std.Print(debugPrintf("[DEBUG] "+format, v...))
	}
}

func Info(format string, v ...interface{}) {
	if current <= InfoLevel {
		std.Print(infoPrintf("[INFO] "+format, v...))
	}
}

func Warn(format string, v ...interface{}) {
	if current <= WarnLevel {
		std.Print(warnPrintf("[WARN] "+format, v...))
	}
}

func Error(format string, v ...interface{}) {
	if current <= ErrorLevel {
		std.Print(errorPrintf("[ERROR] "+format, v...))
	}
}
