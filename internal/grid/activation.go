package grid

// DefaultLaunchThreshold is the number of frames within which a second
// activation of the selected cell counts as a launch.
const DefaultLaunchThreshold = 30

// activation counts frames since the last selection change or activation.
// It starts expired so the very first activation of the initial selection
// only arms it.
type activation struct {
	frames    int
	threshold int
}

func newActivation(threshold int) activation {
	if threshold <= 0 {
		threshold = DefaultLaunchThreshold
	}
	return activation{frames: threshold, threshold: threshold}
}

func (a *activation) reset() {
	a.frames = 0
}

func (a *activation) expire() {
	a.frames = a.threshold
}

func (a *activation) armed() bool {
	return a.frames < a.threshold
}

// tick advances the counter, saturating at the threshold.
func (a *activation) tick() {
	if a.frames < a.threshold {
		a.frames++
	}
}
