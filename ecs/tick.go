package ecs

import "github.com/milk9111/fishtown/ecs/component"

// Tick is the per-frame context handed to every system. Systems read time
// and input from here rather than from globals.
type Tick struct {
	Dt    float64
	Input component.Input
}
