// SPDX-License-Identifier: MIT

package strength

// Option configures Entropy and Redundancy.
type Option func(*config)

type config struct {
	estimator   Estimator
	userInputs  []string
	relativeMax bool
}

func newConfig(opts ...Option) config {
	cfg := config{estimator: ZXCVBN}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithEstimator replaces the zxcvbn estimator. Panics on nil.
func WithEstimator(e Estimator) Option {
	if e == nil {
		panic("strength: WithEstimator: estimator must be non-nil")
	}
	return func(c *config) { c.estimator = e }
}

// WithUserInputs passes attacker-known words to the estimator.
func WithUserInputs(words ...string) Option {
	return func(c *config) { c.userInputs = append([]string(nil), words...) }
}

// WithRelativeMax makes Redundancy divide by MaxRelativeEntropy instead of
// the printable-ASCII MaxEntropy.
func WithRelativeMax() Option {
	return func(c *config) { c.relativeMax = true }
}
