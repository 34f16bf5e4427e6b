package register

import "strings"

// contentsAreSaved reports whether contents could have been produced by
// joining values with sep, in order. It runs a single forward pass with no
// backtracking, so a value that itself contains sep can be misjudged as
// different (a false negative); genuinely different content is never
// judged equal.
func contentsAreSaved(values *Values, contents, sep string) bool {
	first, ok := values.Next()
	switch {
	case !ok:
		return contents == ""
	case strings.HasPrefix(contents, first):
		contents = contents[len(first):]
	default:
		return false
	}

	for {
		value, ok := values.Next()
		if !ok {
			break
		}
		if !strings.HasPrefix(contents, sep) || !strings.HasPrefix(contents[len(sep):], value) {
			return false
		}
		contents = contents[len(sep)+len(value):]
	}

	return contents == ""
}
