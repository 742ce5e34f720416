// SPDX-License-Identifier: MIT

package strength

// Thresholds in bits.
const (
	ThresholdStandalone = 80.0
	ThresholdThrottled  = 50.0
	ThresholdHardware   = 13.0
)

// Level is a coarse grade derived from an entropy figure.
type Level int

// Levels, weakest first.
const (
	LevelInsufficient Level = iota // below every threshold
	LevelHardware                  // needs a hardware authenticator
	LevelThrottled                 // needs rate limiting or captcha
	LevelStandalone                // acceptable on its own
)

// String implements fmt.Stringer.
func (l Level) String() string {
	switch l {
	case LevelInsufficient:
		return "insufficient"
	case LevelHardware:
		return "hardware"
	case LevelThrottled:
		return "throttled"
	case LevelStandalone:
		return "standalone"
	default:
		return "unknown"
	}
}

// Grade maps bits onto the highest threshold it reaches.
func Grade(bits float64) Level {
	switch {
	case bits >= ThresholdStandalone:
		return LevelStandalone
	case bits >= ThresholdThrottled:
		return LevelThrottled
	case bits >= ThresholdHardware:
		return LevelHardware
	default:
		return LevelInsufficient
	}
}

// MarshalText encodes the level by name.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
