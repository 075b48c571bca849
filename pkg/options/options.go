package options

// DefaultOptions is the baseline tuning used when no options are supplied.
var DefaultOptions = SpellerOptions{
	FloorProbability: 1e-6,
	MaxWorkers:       4,
	MinWordLength:    2,
	FilterShortWords: false,
	PreserveCase:     true,
}

type SpellerOptions struct {
	// FloorProbability substitutes for any transition or emission pair
	// absent from the trained tables. It keeps log() finite and charges
	// a fixed, very low score for unseen combinations.
	FloorProbability float64
	// MaxWorkers bounds concurrent decodes in batch correction.
	MaxWorkers int
	// MinWordLength is the longest token length the short-word filter
	// still passes through untouched.
	MinWordLength    int
	FilterShortWords bool
	// PreserveCase restores Title/UPPER casing of the original token
	// onto the corrected word.
	PreserveCase bool
}

type Option interface {
	Apply(options *SpellerOptions)
}

type FuncConfig struct {
	ops func(options *SpellerOptions)
}

func (w FuncConfig) Apply(conf *SpellerOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *SpellerOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithFloorProbability(floor float64) Option {
	return NewFuncOption(func(options *SpellerOptions) {
		if floor > 0 {
			options.FloorProbability = floor
		}
	})
}

func WithMaxWorkers(workers int) Option {
	return NewFuncOption(func(options *SpellerOptions) {
		if workers > 0 {
			options.MaxWorkers = workers
		}
	})
}

// WithShortWordFilter leaves tokens of at most minLength characters
// uncorrected. Short words are where a forced vocabulary snap does the
// most damage.
func WithShortWordFilter(minLength int) Option {
	return NewFuncOption(func(options *SpellerOptions) {
		options.FilterShortWords = true
		if minLength > 0 {
			options.MinWordLength = minLength
		}
	})
}

func WithoutCaseRestore() Option {
	return NewFuncOption(func(options *SpellerOptions) {
		options.PreserveCase = false
	})
}
