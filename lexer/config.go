package lexer

import "fmt"

// Config controls optional bounds applied around the core lexer VM: how
// far the VM's thread alternatives are allowed to fan out — styled on
// regex.Config. A non-zero bound can change the resulting tokens, because
// alternatives past it are dropped.
type Config struct {
	// MaxThreads bounds the lexer VM's alternative stack (lvm.VM.MaxThreads):
	// a Split (from Alternation, ZeroOrOne, ZeroOrMore or OneOrMore) that
	// would grow the stack past it drops its alternative. The threads a
	// Condition's Push spawns are not bounded. Zero means unbounded.
	// Default: 0.
	MaxThreads int
}

// DefaultConfig returns a Config with the defaults documented on each field.
func DefaultConfig() Config {
	return Config{MaxThreads: 0}
}

// Validate reports whether c holds legal values.
func (c Config) Validate() error {
	if c.MaxThreads < 0 {
		return fmt.Errorf("lexer: MaxThreads must be >= 0, got %d", c.MaxThreads)
	}
	return nil
}
