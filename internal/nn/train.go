package nn

// Observer receives the loss of each reported epoch. epoch is 0-based.
type Observer func(epoch int, loss float64)

// TrainOption configures a Train call.
type TrainOption func(*trainConfig)

type trainConfig struct {
	observer    Observer
	reportEvery int
}

// WithObserver registers a per-epoch loss callback.
func WithObserver(fn Observer) TrainOption {
	return func(c *trainConfig) {
		c.observer = fn
	}
}

// WithReportEvery limits observer calls to every n-th epoch, i.e. when
// (epoch+1)%n == 0. Values below 1 report every epoch.
func WithReportEvery(n int) TrainOption {
	return func(c *trainConfig) {
		c.reportEvery = n
	}
}

func newTrainConfig(opts []TrainOption) trainConfig {
	cfg := trainConfig{reportEvery: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.reportEvery < 1 {
		cfg.reportEvery = 1
	}
	return cfg
}

func (c trainConfig) notify(epoch int, loss float64) {
	if c.observer == nil {
		return
	}
	if (epoch+1)%c.reportEvery == 0 {
		c.observer(epoch, loss)
	}
}

// History holds the loss recorded at the start of every epoch, i.e. the loss
// of the parameters before that epoch's update.
type History struct {
	Losses []float64
}

// Epochs returns the number of recorded epochs.
func (h *History) Epochs() int {
	return len(h.Losses)
}

// First returns the loss of epoch 0, or 0 if nothing was recorded.
func (h *History) First() float64 {
	if len(h.Losses) == 0 {
		return 0
	}
	return h.Losses[0]
}

// Last returns the loss of the final epoch, or 0 if nothing was recorded.
func (h *History) Last() float64 {
	if len(h.Losses) == 0 {
		return 0
	}
	return h.Losses[len(h.Losses)-1]
}
