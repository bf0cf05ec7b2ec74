package vectortree

import "github.com/npillmayer/schuko/tracing"

// Config holds the cross-cutting knobs a PSeq construction site may want to
// override. The zero value is valid: it traces through the package tracer
// and dumps without color. DefaultConfig enables color.
type Config struct {
	Trace tracing.Trace
	Color bool
}

// DefaultConfig returns the Config used by every constructor that does not
// take one explicitly.
func DefaultConfig() Config {
	return Config{Trace: T(), Color: true}
}

func (c Config) tracer() tracing.Trace {
	if c.Trace != nil {
		return c.Trace
	}
	return T()
}
