package go3to4

// Option configures a Controller.
type Option func(*config)

type config struct {
	animationSpeed float64
	scrambleSeed   int64
	historyLimit   int
}

func defaultConfig() *config {
	return &config{
		animationSpeed: 4.0,
		scrambleSeed:   0,
		historyLimit:   0,
	}
}

// WithAnimationSpeed scales how fast queued moves complete. The default
// of 4.0 matches a comfortable interactive pace; higher is faster.
func WithAnimationSpeed(speed float64) Option {
	return func(c *config) {
		if speed > 0 {
			c.animationSpeed = speed
		}
	}
}

// WithScrambleSeed fixes the scramble RNG seed for reproducible
// scrambles. The default of 0 seeds from the clock.
func WithScrambleSeed(seed int64) Option {
	return func(c *config) {
		c.scrambleSeed = seed
	}
}

// WithHistoryLimit caps how many undoable entries are retained.
// The default of 0 keeps everything.
func WithHistoryLimit(limit int) Option {
	return func(c *config) {
		c.historyLimit = limit
	}
}
