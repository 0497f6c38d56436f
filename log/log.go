// Package log provides the application's file-backed loggers. The TUI owns
// stdout, so everything goes to a file in the temp directory.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	InfoLog    = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(io.Discard, "", 0)
)

var logFileName = filepath.Join(os.TempDir(), "slider.log")

var globalLogFile *os.File

// Initialize opens the log file and points the package loggers at it. It also
// sets up debug logging when SLIDER_DEBUG=1. Call Close before exiting.
func Initialize() {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Logging is best effort; the loggers stay on io.Discard.
		fmt.Fprintf(os.Stderr, "could not open log file: %s\n", err)
		InitDebug()
		return
	}

	const fmtFlags = log.Ldate | log.Ltime | log.Lshortfile
	InfoLog = log.New(f, "INFO:", fmtFlags)
	WarningLog = log.New(f, "WARNING:", fmtFlags)
	ErrorLog = log.New(f, "ERROR:", fmtFlags)
	globalLogFile = f

	InitDebug()
}

// Close flushes debug statistics and closes any open log files.
func Close() {
	profiler.LogStats()
	CloseDebug()
	if globalLogFile != nil {
		_ = globalLogFile.Close()
		globalLogFile = nil
		fmt.Println("wrote logs to " + logFileName)
	}
}
