// Package log provides file-backed logging for wxdeck. The TUI owns the
// terminal, so nothing is ever written to stdout/stderr while it runs;
// everything goes to a log file in the temp directory.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var logFileName = filepath.Join(os.TempDir(), "wxdeck.log")

const logFlags = log.Ldate | log.Ltime | log.Lshortfile

// Discarding defaults keep library code safe to call before Initialize.
var (
	InfoLog    = log.New(io.Discard, "INFO: ", logFlags)
	WarningLog = log.New(io.Discard, "WARNING: ", logFlags)
	ErrorLog   = log.New(io.Discard, "ERROR: ", logFlags)

	globalLogFile *os.File
	enabled       bool
)

// Initialize opens the log file and sets up the leveled loggers. Call once
// at startup; pair with Close.
func Initialize() {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// No file: loggers still work, they just go nowhere useful.
		f = os.Stderr
	} else {
		globalLogFile = f
		enabled = true
	}

	InfoLog = log.New(f, "INFO: ", logFlags)
	WarningLog = log.New(f, "WARNING: ", logFlags)
	ErrorLog = log.New(f, "ERROR: ", logFlags)

	InitDebug()
}

// Close flushes and closes the log file.
func Close() {
	CloseDebug()
	if globalLogFile != nil {
		_ = globalLogFile.Close()
	}
}

// Path returns the location of the log file for display in diagnostics.
func Path() string {
	return logFileName
}

// Every prints to stdout in addition to logging. Only safe before the TUI
// has taken over the terminal.
func Every(format string, v ...interface{}) {
	fmt.Printf(format+"\n", v...)
	if InfoLog != nil {
		InfoLog.Printf(format, v...)
	}
}
