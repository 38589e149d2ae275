package generator

import (
	"time"

	"github.com/san-kum/amazeing/internal/maze"
	"go.uber.org/zap"
)

// Options configures maze generation.
type Options struct {
	Seed           int64       // Seed for the random source (0 = time based)
	PatternMinSize int         // Smallest width and height that get the "42" glyph, at least 9
	NoPattern      bool        // NoPattern disables the glyph entirely
	Logger         *zap.Logger // nil means no logging
}

// DefaultOptions returns options with a time based seed.
func DefaultOptions() *Options {
	return &Options{
		Seed:           0,
		PatternMinSize: maze.DefaultPatternMinSize,
		Logger:         nil,
	}
}

func (o *Options) seed() int64 {
	if o.Seed == 0 {
		return time.Now().UnixNano()
	}
	return o.Seed
}
