package component

import "fmt"

// PlayerStateID is the player's discrete action state.
type PlayerStateID int

const (
	PlayerIdle PlayerStateID = iota
	PlayerWalk
	PlayerRow
	PlayerFish
	PlayerHook
	PlayerAttack

	playerStateCount
)

var playerStateNames = [...]string{
	PlayerIdle:   "idle",
	PlayerWalk:   "walk",
	PlayerRow:    "row",
	PlayerFish:   "fish",
	PlayerHook:   "hook",
	PlayerAttack: "attack",
}

// PlayerStates lists every state in sprite index order.
func PlayerStates() []PlayerStateID {
	out := make([]PlayerStateID, 0, playerStateCount)
	for s := PlayerStateID(0); s < playerStateCount; s++ {
		out = append(out, s)
	}
	return out
}

func (s PlayerStateID) String() string {
	if s >= 0 && s < playerStateCount {
		return playerStateNames[s]
	}
	return fmt.Sprintf("PlayerStateID(%d)", int(s))
}

func (s PlayerStateID) Valid() bool {
	return s >= 0 && s < playerStateCount
}

// SpriteIndex is the animation slot used while in state s.
func (s PlayerStateID) SpriteIndex() int {
	return int(s)
}

// ParsePlayerState maps a prefab name such as "fish" to its state.
func ParsePlayerState(name string) (PlayerStateID, bool) {
	for s, n := range playerStateNames {
		if n == name {
			return PlayerStateID(s), true
		}
	}
	return 0, false
}

// PlayerStateNames returns every state name in sprite index order.
func PlayerStateNames() []string {
	return append([]string(nil), playerStateNames[:]...)
}
