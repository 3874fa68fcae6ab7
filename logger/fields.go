package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldOperation = "operation"

	// Def graph
	FieldDef          = "def"
	FieldTag          = "tag"
	FieldKind         = "kind"
	FieldRelationship = "relationship"
	FieldRef          = "ref"
	FieldDepth        = "depth"

	// Counts and sizes
	FieldCount     = "count"
	FieldRows      = "rows"
	FieldConjuncts = "conjuncts"
	FieldPasses    = "passes"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Files and paths
	FieldFile  = "file"
	FieldFiles = "files"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Watcher struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewWatcher() *Watcher {
//	    return &Watcher{
//	        logger: logger.ComponentLogger("source.watcher"),
//	    }
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	defLogger := logger.ChildLogger(baseLogger, logger.FieldDef, "ahu")
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
