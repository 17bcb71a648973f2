package system

import "github.com/milk9111/fishtown/ecs/component"

// InputLatch keeps release edges that arrive while the simulation is paused
// and hands them to the first tick after it resumes. Presses made while
// paused are dropped.
type InputLatch struct {
	actReleased       bool
	secondaryReleased bool
}

// Hold records the release edges of a paused tick.
func (l *InputLatch) Hold(in component.Input) {
	l.actReleased = l.actReleased || in.ActReleased
	l.secondaryReleased = l.secondaryReleased || in.SecondaryReleased
}

// Release merges the held edges into in and clears them.
func (l *InputLatch) Release(in component.Input) component.Input {
	in.ActReleased = in.ActReleased || l.actReleased
	in.SecondaryReleased = in.SecondaryReleased || l.secondaryReleased
	*l = InputLatch{}
	return in
}
