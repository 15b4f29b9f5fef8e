//go:build bitenum

package modes

// Level is a log level.
//
//bitenum:enum u16, exhaustive: false
type Level uint16

const (
	LevelDebug Level = 1_000
	LevelInfo  Level = 2_000 // default
)
