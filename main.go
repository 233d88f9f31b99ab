package main

import (
	"os"

	"github.com/mordilloSan/clogger/clogger"
)

// Example demonstrating the clogger facade.
func main() {
	logFile := os.DevNull

	if len(os.Args) > 1 {
		logFile = os.Args[1]
	}

	// Initialize the logger once; the same lines go to the terminal and
	// to the log file.
	// Usage: ./clogger [logfile]
	// Example: ./clogger ./app.log
	clogger.Init(logFile)
	clogger.Infof("logging to %s", logFile)

	// Auto-derived targets tag each record with the calling function and
	// call site.
	clogger.Debugf("start-up arguments: %v", os.Args)
	clogger.Infof("hello %s", "world")
	clogger.Warnf("be careful")
	clogger.Errorf("oops: %v", "something happened")

	// Explicit targets mark the logical origin instead.
	clogger.InfoAs("demo::payments", "charge accepted")
	clogger.WarnAs("demo::payments", "retrying charge, attempt %d", 2)
	clogger.ErrorAs("demo::storage", "connection lost after %dms", 1500)
	clogger.DebugAs("demo::cache", "lookup key=%s hit=%t", "user:123", true)
}
