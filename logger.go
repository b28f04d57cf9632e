package go_pkcrypto

import (
	"os"

	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// LogInit initializes the logger with the specified level.
//
// go-i2p/logger reads DEBUG_I2P and WARNFAIL_I2P once, from its own init,
// so the level is also applied to the live logger here. The environment is
// still written for child processes. FATAL sets WARNFAIL_I2P, which only
// takes effect in processes started afterwards.
func LogInit(level int) {
	logger.InitializeGoI2PLogger()

	switch level {
	case DEBUG:
		os.Setenv("DEBUG_I2P", "debug")
		applyLevel(logger.DebugLevel)
	case INFO:
		os.Setenv("DEBUG_I2P", "debug")
		applyLevel(logger.InfoLevel)
	case WARNING:
		os.Setenv("DEBUG_I2P", "warn")
		applyLevel(logger.WarnLevel)
	case ERROR:
		os.Setenv("DEBUG_I2P", "error")
		applyLevel(logger.ErrorLevel)
	case FATAL:
		os.Setenv("DEBUG_I2P", "fatal")
		os.Setenv("WARNFAIL_I2P", "true")
		applyLevel(logger.FatalLevel)
	default:
		os.Setenv("DEBUG_I2P", "debug")
		applyLevel(logger.DebugLevel)
	}
}

func applyLevel(level logger.Level) {
	log.SetOutput(os.Stdout)
	log.SetLevel(level)
}

// ParseLogLevel maps a level name ("debug", "info", "warning", "error",
// "fatal") to one of the level constants. Unknown names map to ERROR.
func ParseLogLevel(name string) int {
	switch name {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARNING
	case "fatal":
		return FATAL
	default:
		return ERROR
	}
}
