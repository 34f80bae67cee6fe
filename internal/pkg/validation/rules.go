package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Bare domain pattern, e.g. iitb.ac.in
	DomainPattern = `^[a-z0-9.\-]+\.[a-z]{2,}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email  *regexp.Regexp
	Domain *regexp.Regexp
}{
	Email:  regexp.MustCompile(EmailPattern),
	Domain: regexp.MustCompile(DomainPattern),
}

// IsValidEmail reports whether the value looks like an email address
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(email))
}

// IsValidDomain reports whether the value looks like a bare email domain
func IsValidDomain(domain string) bool {
	return CompiledPatterns.Domain.MatchString(strings.ToLower(domain))
}

// EmailDomain returns the domain portion of an email address, lowercased.
// Returns an empty string when the value is not an email.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// ValidatePassword checks password strength requirements
func ValidatePassword(password string) bool {
	return len(password) >= PasswordMinLength
}
