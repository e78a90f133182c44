// Package match scores free-text field names against discovered schema
// columns. Scores are relative ranking signals, not probabilities; they are
// unclamped and can exceed 1.0 when boosts stack.
package match

// Normalize canonicalizes an identifier for comparison: lower-cases the
// input and strips every character outside [a-z0-9]. No separators are
// retained, so "Unit Of Measure", "unit_of_measure" and "UnitOfMeasure" all
// normalize to the same token. Idempotent.
func Normalize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+('a'-'A'))
		}
	}
	return string(out)
}
