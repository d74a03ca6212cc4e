package slug

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

// Base62 character set used for collision suffixes. Base62 avoids characters
// that need escaping in URLs.
const base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	dashRuns     = regexp.MustCompile(`-{2,}`)
)

// Make derives a URL-safe slug from an agency name: lowercased, spaces and
// punctuation collapsed to single dashes, trimmed to 60 characters.
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = invalidChars.ReplaceAllString(s, "-")
	s = dashRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if len(s) > 60 {
		s = strings.Trim(s[:60], "-")
	}

	return s
}

// WithSuffix appends a short random base62 suffix, used when the plain slug
// is already taken by another profile.
func WithSuffix(s string) string {
	return s + "-" + randomSuffix(4)
}

// IsValid reports whether a slug consists only of lowercase alphanumerics
// and single dashes.
func IsValid(s string) bool {
	if s == "" || len(s) > 140 {
		return false
	}
	return s == Make(s)
}

func randomSuffix(length int) string {
	result := make([]byte, length)

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(base62Chars))))
		if err != nil {
			// crypto/rand failing is effectively unrecoverable; fall back to
			// a fixed character rather than aborting profile creation
			num = big.NewInt(int64(i % len(base62Chars)))
		}

		result[i] = base62Chars[num.Int64()]
	}

	return strings.ToLower(string(result))
}
