package component

import (
	"errors"
	"fmt"
)

var ErrInvalidAnimation = errors.New("invalid animation config")

type LoopMode int

const (
	LoopOnce LoopMode = iota
	LoopRepeating
)

func (m LoopMode) String() string {
	if m == LoopRepeating {
		return "repeating"
	}
	return "once"
}

// AnimationConfig is one playback sequence over an inclusive frame range.
type AnimationConfig struct {
	Name          string
	First         int
	Last          int
	FrameDuration float64
	Mode          LoopMode
}

func (c AnimationConfig) FrameCount() int {
	return c.Last - c.First + 1
}

// Duration is the length of one full pass in seconds.
func (c AnimationConfig) Duration() float64 {
	return float64(c.FrameCount()) * c.FrameDuration
}

func (c AnimationConfig) Validate() error {
	if c.First < 0 || c.First > c.Last {
		return fmt.Errorf("%w %q: frames %d..%d", ErrInvalidAnimation, c.Name, c.First, c.Last)
	}
	if !(c.FrameDuration > 0) {
		return fmt.Errorf("%w %q: frame duration %v", ErrInvalidAnimation, c.Name, c.FrameDuration)
	}
	return nil
}

// Animation plays Configs[Active]. Elapsed counts up from zero to the
// config's Duration.
type Animation struct {
	Configs []AnimationConfig
	Active  int
	Frame   int
	Elapsed float64
	Playing bool
}

// Current returns the active config.
func (a *Animation) Current() (AnimationConfig, bool) {
	if a == nil || a.Active < 0 || a.Active >= len(a.Configs) {
		return AnimationConfig{}, false
	}
	return a.Configs[a.Active], true
}

var AnimationComponent = NewComponent[Animation]()
