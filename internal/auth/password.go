package auth

import "strings"

// Strength is a password quality report: one point per satisfied check.
type Strength struct {
	Score  int    `json:"score"`
	Label  string `json:"label"`
	Checks Checks `json:"checks"`
}

// Checks are the individual password requirements.
type Checks struct {
	Length    bool `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Number    bool `json:"number"`
	Special   bool `json:"special"`
}

const specialChars = `!@#$%^&*(),.?":{}|<>`

// Score rates a password from 0 to 5.
func Score(password string) Strength {
	checks := Checks{
		Length:    len(password) >= 8,
		Uppercase: strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }),
		Lowercase: strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }),
		Number:    strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }),
		Special:   strings.ContainsAny(password, specialChars),
	}

	score := 0
	for _, ok := range []bool{checks.Length, checks.Uppercase, checks.Lowercase, checks.Number, checks.Special} {
		if ok {
			score++
		}
	}

	return Strength{Score: score, Label: label(score), Checks: checks}
}

func label(score int) string {
	switch {
	case score <= 1:
		return "Very Weak"
	case score <= 2:
		return "Weak"
	case score <= 3:
		return "Fair"
	case score <= 4:
		return "Good"
	default:
		return "Strong"
	}
}
