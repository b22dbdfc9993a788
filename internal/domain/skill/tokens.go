package skill

import "strings"

// Parse splits a comma-separated skills declaration into lower-cased, trimmed
// tokens. Empty tokens are dropped and repeats keep their first position.
func Parse(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = Normalize(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Normalize lower-cases and trims a single token.
func Normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// Join is the inverse of Parse for storage: tokens joined with ", ".
func Join(tokens []string) string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return strings.Join(out, ", ")
}

// CountMatches returns how many tokens occur as substrings of text.
// text must already be lower-cased; tokens must already be normalized.
func CountMatches(text string, tokens []string) int {
	n := 0
	for _, t := range tokens {
		if t == "" {
			continue
		}
		if strings.Contains(text, t) {
			n++
		}
	}
	return n
}

// ContainsAll reports whether every token occurs in text. An empty token list
// imposes no constraint.
func ContainsAll(text string, tokens []string) bool {
	for _, t := range tokens {
		if t == "" {
			continue
		}
		if !strings.Contains(text, t) {
			return false
		}
	}
	return true
}

// ContainsFold is a case-insensitive substring test.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
