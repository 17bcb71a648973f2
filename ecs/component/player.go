package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fishtown/economy"
)

type Player struct {
	economy.Ledger

	State      PlayerStateID
	FacingLeft bool
	MoveSpeed  float64
	// Velocity is the movement intent for the current tick.
	Velocity cp.Vector
}

var PlayerComponent = NewComponent[Player]()

// ZoneMembership records the zone the player was in at the end of the last
// zone check.
type ZoneMembership struct {
	Kind ZoneKind
	Name string
}

var ZoneMembershipComponent = NewComponent[ZoneMembership]()
