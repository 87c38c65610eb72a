package sweephash

import "log"

// SetDebugLogging toggles the one diagnostic line HashGrid.Resize emits,
// the Go analogue of compiling the original against IPC_TOOLKIT_WITH_LOGGER.
// Off by default: the hot path (addX/getXY) never logs regardless.
func SetDebugLogging(enabled bool) {
	debugLog = enabled
}

func logf(format string, args ...any) {
	log.Printf("sweephash: "+format, args...)
}
