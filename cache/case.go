package cache

import (
	"strings"
	"unicode"
)

// Namespace turns a reflected class name such as
// "github.com/acme/app.Widget[int]" into a key prefix made only of lowercase
// letters, digits and underscores. Keys never collide with KeySeparator.
func Namespace(className string) string {
	if i := strings.LastIndexByte(className, '/'); i >= 0 {
		className = className[i+1:]
	}
	ns := toSnake(className)
	if ns == "" {
		return "anonymous"
	}
	return ns
}

// toSnake converts the provided string to snake_case using ASCII-aware rules.
// Punctuation from reflected type names (pointers, generic brackets, package
// dots) collapses into single underscores.
func toSnake(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(runes) + len(runes)/2)

	lastUnderscore := false

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case unicode.IsUpper(r):
			if b.Len() > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if (unicode.IsLower(prev) || unicode.IsDigit(prev) || nextLower) && !lastUnderscore {
					b.WriteByte('_')
					lastUnderscore = true
				}
			}
			b.WriteRune(unicode.ToLower(r))
			lastUnderscore = false

		case unicode.IsLower(r):
			b.WriteRune(r)
			lastUnderscore = false

		case unicode.IsDigit(r):
			if b.Len() > 0 {
				prev := runes[i-1]
				if !unicode.IsDigit(prev) && prev != '_' && !lastUnderscore {
					b.WriteByte('_')
				}
			}
			b.WriteRune(r)
			lastUnderscore = false

		case r == '_':
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}

		case r == '-' || unicode.IsSpace(r):
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}

		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}

	return strings.Trim(b.String(), "_")
}
