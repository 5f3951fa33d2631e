package validators

import (
	"regexp"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^([a-zA-Z0-9_.\-])+@(([a-zA-Z0-9\-])+\.)+([a-zA-Z0-9]{2,4})+$`)

func IsEmailValid(email string) bool {
	return emailPattern.MatchString(email)
}

// LengthBetween counts runes, not bytes.
func LengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}
