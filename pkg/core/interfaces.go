package core

// Logger receives progress and summary lines from rendering
type Logger interface {
	Printf(format string, args ...interface{})
}
