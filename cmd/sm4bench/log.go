package main

import (
	"io"

	"github.com/btcsuite/btclog/v2"
	"github.com/paul-lee-attorney/gmsm4/internal/bench"
	"github.com/paul-lee-attorney/gmsm4/sm4"
)

// mainSubsystem is the logging code for the command itself.
const mainSubsystem = "SMBN"

// log is the logger of the main package.
var log btclog.Logger = btclog.Disabled

// subsystemLoggers maps each subsystem identifier to its logger.
var subsystemLoggers = map[string]btclog.Logger{}

// initLogging wires one root handler into every subsystem logger and applies
// the configured level to all of them.
func initLogging(w io.Writer, level string) {
	root := btclog.NewSLogger(btclog.NewDefaultHandler(w))

	addSubLogger := func(subsystem string, useLogger func(btclog.Logger)) {
		logger := root.SubSystem(subsystem)
		useLogger(logger)
		subsystemLoggers[subsystem] = logger
	}

	addSubLogger(mainSubsystem, func(l btclog.Logger) { log = l })
	addSubLogger(sm4.Subsystem, sm4.UseLogger)
	addSubLogger(bench.Subsystem, bench.UseLogger)

	setLogLevels(level)
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level.
func setLogLevels(logLevel string) {
	// Defaults to info if the log level is invalid.
	level, _ := btclog.LevelFromString(logLevel)
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}
