// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package strength

import (
	"encoding/json"
	"fmt"
)

// Rating is the discrete strength band of an assessed password. Bands are
// ordered, VeryWeak lowest.
type Rating int

const (
	VeryWeak Rating = iota
	Weak
	Moderate
	Strong
	VeryStrong
)

func (r Rating) String() string {
	switch r {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Moderate:
		return "Moderate"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

func (r Rating) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", r.String())), nil
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}

	for candidate := VeryWeak; candidate <= VeryStrong; candidate++ {
		if candidate.String() == label {
			*r = candidate
			return nil
		}
	}

	return fmt.Errorf("unknown rating %q", label)
}

// ratingFor maps a clamped score to its band. Each threshold is the
// inclusive lower bound of its band; scores below the first threshold land
// in the lowest band.
func (c Config) ratingFor(score int) Rating {
	rating := VeryWeak
	for i, threshold := range c.Thresholds {
		if score >= threshold {
			rating = Rating(i)
		}
	}
	return rating
}
