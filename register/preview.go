package register

import (
	"iter"
	"strings"
)

// emptyPreview is shown for registers whose preview has no text.
const emptyPreview = "<empty>"

// specialPreviews describes the special registers in listing UIs.
var specialPreviews = [...]struct {
	name    rune
	preview string
}{
	{'_', "<empty>"},
	{'#', "<selection indices>"},
	{'.', "<selection contents>"},
	{'%', "<document path>"},
	{'+', "<system clipboard>"},
	{'*', "<primary clipboard>"},
}

// IterPreview yields (name, one-line preview) for every concretely stored
// register, followed by a fixed description for each special name. The
// caches backing '+' and '*' are skipped; stored registers come out in no
// particular order.
func (s *Store) IterPreview() iter.Seq2[rune, string] {
	return func(yield func(rune, string) bool) {
		for name, reg := range s.inner {
			if name == '+' || name == '*' {
				continue
			}
			preview := emptyPreview
			if v, ok := reg.LatestValue(); ok && v != "" {
				preview, _, _ = strings.Cut(v, "\n")
				preview = strings.TrimSuffix(preview, "\r")
			}
			if !yield(name, preview) {
				return
			}
		}
		for _, sp := range specialPreviews {
			if !yield(sp.name, sp.preview) {
				return
			}
		}
	}
}
