package register

// Values is a finite sequence of register values that can be consumed from
// either end and always knows how many values remain. Callers that only
// need the first or last value can fetch it without materializing the rest,
// and special registers can synthesize values on demand.
//
// A Values is backed either by a slice (stored yanks, selection fragments,
// single values) or by a generator invoked per index (selection indices).
// Each call to Store.Read produces an independent instance; consuming one
// never affects another.
type Values struct {
	items []string
	gen   func(int) string
	head  int
	tail  int
}

func newEmptyValues() *Values {
	return &Values{}
}

func newSingleValue(v string) *Values {
	return newSliceValues([]string{v})
}

func newSliceValues(items []string) *Values {
	return &Values{items: items, tail: len(items)}
}

// newSynthValues produces n values lazily; gen(i) is invoked when index i
// is consumed.
func newSynthValues(n int, gen func(int) string) *Values {
	return &Values{gen: gen, tail: n}
}

// Next consumes and returns the next value from the front.
func (v *Values) Next() (string, bool) {
	if v.head >= v.tail {
		return "", false
	}
	i := v.head
	v.head++
	return v.at(i), true
}

// NextBack consumes and returns the next value from the back.
func (v *Values) NextBack() (string, bool) {
	if v.head >= v.tail {
		return "", false
	}
	v.tail--
	return v.at(v.tail), true
}

// Len reports how many values remain unconsumed.
func (v *Values) Len() int {
	return v.tail - v.head
}

// Collect drains the remaining values from the front into a new slice.
func (v *Values) Collect() []string {
	out := make([]string, 0, v.Len())
	for s, ok := v.Next(); ok; s, ok = v.Next() {
		out = append(out, s)
	}
	return out
}

func (v *Values) at(i int) string {
	if v.gen != nil {
		return v.gen(i)
	}
	return v.items[i]
}
