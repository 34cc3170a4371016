package algorithm

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/samdwyer/dungeongen/internal/builder"
)

// ErrUnknownOption is returned when an option name is not in the schema of
// the selected algorithm.
var ErrUnknownOption = errors.New("unknown option")

// Session is a mutable generation setup: the chosen algorithm, the map size,
// the replay delay and the current option values.
type Session struct {
	Algorithm Algorithm
	Width     int
	Height    int
	Delay     time.Duration
	Options   builder.Options
}

// NewSession returns a session with nothing selected and the default map
// size of 60x40.
func NewSession() *Session {
	return &Session{
		Algorithm: None,
		Width:     60,
		Height:    40,
		Delay:     100 * time.Millisecond,
	}
}

// Select switches algorithm. The options are reset to the new algorithm's
// defaults; values tuned for the previous algorithm are dropped.
func (s *Session) Select(a Algorithm) {
	if a == s.Algorithm && s.Options != nil {
		return
	}
	s.Algorithm = a
	s.Options = a.Options()
}

// Set changes the option at index i, clamped to its range.
func (s *Session) Set(i, value int) {
	o := s.Options[i]
	o.Value = value
	s.Options[i] = o.Clamp()
}

// SetByName changes an option by name, clamped to its range.
func (s *Session) SetByName(name string, value int) error {
	i := s.Options.Index(name)
	if i < 0 {
		return fmt.Errorf("%w %q for %s", ErrUnknownOption, name, s.Algorithm)
	}
	s.Set(i, value)
	return nil
}

// NewBuilder returns a fresh builder for the selected algorithm.
func (s *Session) NewBuilder(rng *rand.Rand) builder.Builder {
	return s.Algorithm.New(rng)
}
