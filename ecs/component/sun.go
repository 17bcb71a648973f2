package component

// Sun moves on a sine over simulated time. Daylight is 1 at noon and 0 at
// midnight.
type Sun struct {
	Amplitude float64
	Speed     float64
	Elapsed   float64
	Daylight  float64
}

var SunComponent = NewComponent[Sun]()
