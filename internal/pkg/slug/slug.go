// Package slug builds URL-safe identifiers from free text.
package slug

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MaxLength matches the professor slug column width.
const MaxLength = 200

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9_\s-]+`)
	reDashes   = regexp.MustCompile(`[-\s]+`)
)

// Make lowercases s, strips diacritics, drops anything that is not a letter, digit, underscore,
// space or hyphen, and joins the remaining words with single hyphens.
// "Jane  Smith" becomes "jane-smith", "José Núñez" becomes "jose-nunez".
func Make(s string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	out := strings.ToLower(b.String())
	out = reNonAlnum.ReplaceAllString(out, "")
	out = strings.TrimSpace(out)
	out = reDashes.ReplaceAllString(out, "-")
	out = strings.Trim(out, "-_")

	if utf8.RuneCountInString(out) > MaxLength {
		out = strings.Trim(string([]rune(out)[:MaxLength]), "-")
	}
	return out
}

// ExistsFunc reports whether a candidate key is already taken.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Unique returns base if it is free, otherwise the first free base-1, base-2, ...
func Unique(ctx context.Context, base string, exists ExistsFunc) (string, error) {
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("checking slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
