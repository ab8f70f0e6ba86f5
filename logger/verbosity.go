package logger

import "go.uber.org/zap/zapcore"

// Verbosity level constants for CLI flag counts.
const (
	VerbosityUser  = 0 // No flags: generated files and errors only
	VerbosityInfo  = 1 // -v: + per-unit progress, generator selection
	VerbosityDebug = 2 // -vv: + conversion details, derived output paths
	VerbosityTrace = 3 // -vvv: + rendered node trees
)

// VerbosityToLevel maps verbosity flags (-v, -vv, etc.) to zap log levels
//
// Mapping:
//
//	0 (none)  -> WarnLevel  (errors and warnings only)
//	1 (-v)    -> InfoLevel  (+ informational messages)
//	2+ (-vv)  -> DebugLevel (+ debug messages)
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch verbosity {
	case VerbosityUser:
		return zapcore.WarnLevel
	case VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// FieldNames used for consistent structured logging across Loom.
const (
	FieldUnit      = "unit"
	FieldGenerator = "generator"
	FieldDecl      = "declaration"
	FieldOutput    = "output"
	FieldCount     = "count"
	FieldError     = "error"
)
