// SPDX-License-Identifier: MIT

package strength

import (
	"github.com/nbutton23/zxcvbn-go"
)

const methodEvaluate = "Evaluate"

// Report collects every measure for one password.
type Report struct {
	Entropy            float64 `json:"entropy"`              // zxcvbn, bits
	MaxEntropy         float64 `json:"max_entropy"`          // printable ASCII ceiling
	MaxRelativeEntropy float64 `json:"max_relative_entropy"` // present classes only
	CharsetEntropy     float64 `json:"charset_entropy"`
	Redundancy         float64 `json:"redundancy"` // 1 − Entropy/MaxEntropy
	Score              int     `json:"score"`      // zxcvbn 0..4
	CrackTime          string  `json:"crack_time"` // zxcvbn human estimate
	Level              Level   `json:"level"`      // Grade(MaxEntropy)
	Secure             bool    `json:"secure"`     // MaxEntropy ≥ ThresholdStandalone
}

// Evaluate runs zxcvbn once and derives the full Report from it.
//
// Errors: ErrEmptyPassword.
func Evaluate(password string, userInputs ...string) (Report, error) {
	if err := validatePassword(methodEvaluate, password); err != nil {
		return Report{}, err
	}

	res := zxcvbn.PasswordStrength(password, userInputs)
	fixed := WithEstimator(func(string, []string) float64 { return res.Entropy })

	var (
		rep Report
		err error
	)
	rep.Entropy = res.Entropy
	rep.Score = res.Score
	rep.CrackTime = res.CrackTimeDisplay
	if rep.MaxEntropy, err = MaxEntropy(password, DefaultAlphabet); err != nil {
		return Report{}, err
	}
	if rep.MaxRelativeEntropy, err = MaxRelativeEntropy(password); err != nil {
		return Report{}, err
	}
	if rep.CharsetEntropy, err = CharsetEntropy(password); err != nil {
		return Report{}, err
	}
	if rep.Redundancy, err = Redundancy(password, fixed); err != nil {
		return Report{}, err
	}
	rep.Level = Grade(rep.MaxEntropy)
	rep.Secure = rep.MaxEntropy >= ThresholdStandalone

	return rep, nil
}
