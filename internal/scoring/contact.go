package scoring

import (
	"regexp"
	"strings"
	"unicode"
)

// Contact is the best-effort identity pulled from the top of a resume.
// Any field may be empty; none of this gates scoring.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?[0-9][0-9()\-\s.]{6,}[0-9]`)
)

const nameScanLines = 8

// ExtractContact scans resume text for a single email, a phone number with
// at least 8 digits, and a Title-Case name line near the top.
func ExtractContact(text string) Contact {
	c := Contact{Email: emailRe.FindString(text)}

	for _, m := range phoneRe.FindAllString(text, -1) {
		if digitCount(m) >= 8 {
			c.Phone = strings.TrimSpace(m)
			break
		}
	}

	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > nameScanLines {
			break
		}
		if looksLikeName(line) {
			c.Name = line
			break
		}
	}
	return c
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// looksLikeName accepts a line of 2-4 Title-Case words with no digits or
// email-ish characters.
func looksLikeName(line string) bool {
	if strings.ContainsAny(line, "@0123456789") {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		runes := []rune(w)
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes[1:] {
			if !unicode.IsLetter(r) && r != '\'' && r != '-' {
				return false
			}
		}
	}
	return true
}
