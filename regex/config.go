package regex

import "fmt"

// Config controls optional optimizations applied around the core regex
// VM. EnableLiteralPrefilter and EnableASCIIFastPath never change match
// semantics, only whether (and how fast) a given input reaches the
// bytecode interpreter; a non-zero MaxAltStackDepth can, because
// alternatives past the bound are dropped.
type Config struct {
	// EnableLiteralPrefilter builds an Aho-Corasick automaton over a
	// pattern's literal alternatives (see prefilter.go) and consults it
	// before running the VM. Default: true.
	EnableLiteralPrefilter bool

	// EnableASCIIFastPath gates the regex VM's SIMD ASCII-detection fast
	// path (internal/simd.IsASCII): when true, pure-ASCII input skips the
	// []rune decode and is indexed directly off its bytes. Default: true.
	EnableASCIIFastPath bool

	// MaxAltStackDepth bounds the regex VM's alternative stack as an
	// optional guard against catastrophic backtracking. Zero means
	// unbounded. Default: 0.
	MaxAltStackDepth int
}

// DefaultConfig returns a Config with the defaults documented on each field.
func DefaultConfig() Config {
	return Config{
		EnableLiteralPrefilter: true,
		EnableASCIIFastPath:    true,
		MaxAltStackDepth:       0,
	}
}

// Validate reports whether c holds legal values.
func (c Config) Validate() error {
	if c.MaxAltStackDepth < 0 {
		return fmt.Errorf("regex: MaxAltStackDepth must be >= 0, got %d", c.MaxAltStackDepth)
	}
	return nil
}
