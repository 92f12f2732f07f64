// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package strength

// CharClass identifies one of the four character classes a password is
// expected to draw from. Classification is ASCII-based: anything outside
// a-z, A-Z and 0-9, including all non-ASCII runes, counts as special.
type CharClass int

const (
	ClassLower CharClass = iota
	ClassUpper
	ClassDigit
	ClassSpecial
)

// allClasses is the detection order for missing-class findings.
var allClasses = [4]CharClass{ClassLower, ClassUpper, ClassDigit, ClassSpecial}

func (c CharClass) String() string {
	switch c {
	case ClassLower:
		return "lowercase"
	case ClassUpper:
		return "uppercase"
	case ClassDigit:
		return "digit"
	case ClassSpecial:
		return "special"
	default:
		return "unknown"
	}
}

func classOf(r rune) CharClass {
	switch {
	case r >= 'a' && r <= 'z':
		return ClassLower
	case r >= 'A' && r <= 'Z':
		return ClassUpper
	case r >= '0' && r <= '9':
		return ClassDigit
	default:
		return ClassSpecial
	}
}

// Profile holds the per-character facts derived from a password. It is
// recomputed on every assessment and has no lifecycle of its own.
type Profile struct {
	Length   int
	Distinct int
	Classes  [4]bool
}

func profileOf(runes []rune) Profile {
	p := Profile{Length: len(runes)}

	seen := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		p.Classes[classOf(r)] = true
		seen[r] = struct{}{}
	}
	p.Distinct = len(seen)

	return p
}

// ClassCount is how many of the four classes are present, 0 to 4.
func (p Profile) ClassCount() int {
	count := 0
	for _, present := range p.Classes {
		if present {
			count++
		}
	}
	return count
}

// Missing lists the absent classes in detection order.
func (p Profile) Missing() []CharClass {
	missing := make([]CharClass, 0, 4)
	for _, class := range allClasses {
		if !p.Classes[class] {
			missing = append(missing, class)
		}
	}
	return missing
}
