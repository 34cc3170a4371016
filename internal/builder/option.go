package builder

// Option is a named numeric generation parameter with an inclusive range.
// Algorithms read their options by position.
type Option struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
	Min   int    `json:"min" yaml:"min"`
	Max   int    `json:"max" yaml:"max"`
}

// Clamp returns the option with Value forced into [Min, Max].
func (o Option) Clamp() Option {
	if o.Value < o.Min {
		o.Value = o.Min
	}
	if o.Value > o.Max {
		o.Value = o.Max
	}
	return o
}

// Options is an ordered option list.
type Options []Option

// Clone returns an independent copy of the list.
func (opts Options) Clone() Options {
	if opts == nil {
		return nil
	}
	out := make(Options, len(opts))
	copy(out, opts)
	return out
}

// Index returns the position of the option with the given name, or -1.
func (opts Options) Index(name string) int {
	for i, o := range opts {
		if o.Name == name {
			return i
		}
	}
	return -1
}
