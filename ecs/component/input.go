package component

// Input is one tick's snapshot of player intents. Pressed/Released fields are
// edges and are true for a single tick only.
type Input struct {
	MoveX             float64
	ActPressed        bool
	ActReleased       bool
	SecondaryPressed  bool
	SecondaryReleased bool
	MenuPressed       bool
	QuitPressed       bool
}
