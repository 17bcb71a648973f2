package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// DefaultMoveSpeed is used when a player prefab leaves move_speed unset.
	DefaultMoveSpeed = 150.0
)
