// Package xlgrab extracts tabular regions from spreadsheet grids using
// declarative rules, with per-rule failure isolation.
package xlgrab

// DefaultHeaderJoin separates the row segments of a multi-row header.
const DefaultHeaderJoin = "_"

// Options configures a batch extraction.
type Options struct {
	// HeaderJoin is the separator for multi-row header names. Rules may
	// override it per rule; empty means DefaultHeaderJoin.
	HeaderJoin string
	// Clip controls whether ranges overhanging the grid are trimmed to
	// the grid extent instead of failing with RANGE_OUT_OF_BOUNDS.
	// If nil, defaults to true.
	Clip *bool
	// EmitEmptyResults emits a zero-row result (header only) for a rule
	// whose every block failed to resolve. When false such rules are
	// omitted from the result list; their errors are recorded either way.
	EmitEmptyResults bool
}

// DefaultOptions returns the default extraction options.
func DefaultOptions() Options {
	return Options{HeaderJoin: DefaultHeaderJoin}
}

// ShouldClip returns whether overhanging ranges are clipped.
func (o Options) ShouldClip() bool {
	if o.Clip != nil {
		return *o.Clip
	}
	return true
}

// joinFor returns the header join separator for one rule.
func (o Options) joinFor(override string) string {
	if override != "" {
		return override
	}
	if o.HeaderJoin != "" {
		return o.HeaderJoin
	}
	return DefaultHeaderJoin
}
