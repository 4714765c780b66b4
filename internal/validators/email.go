package validators

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizeEmail coloca o e-mail na forma canônica usada pelo índice único.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
