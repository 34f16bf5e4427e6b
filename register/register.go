package register

// maxRegisterHistory is the number of yanks' worth of history a register
// retains. Once a register holds this many yanks, writing discards the
// oldest yank to make room.
const maxRegisterHistory = 100

// Register holds the yank history for a single name.
//
// All values live in one flat slice, oldest yank first; lengths records how
// many values each yank contributed, so the slice can be partitioned back
// into yanks without storing them separately. Only the most recent yank is
// visible through Values; older yanks exist solely for eviction
// bookkeeping.
//
// A zero Register is empty and ready to use. Every yank has at least one
// value: write rejects empty value sets.
type Register struct {
	values  []string
	lengths []int
}

// write appends vals as one new yank, evicting the oldest yank first when
// the history is full. vals must be non-empty.
func (r *Register) write(vals []string) {
	if len(vals) == 0 {
		panic("register: write with no values")
	}
	// Strictly greater: the history briefly holds one yank beyond
	// maxRegisterHistory before the next write evicts.
	if len(r.lengths) > maxRegisterHistory {
		oldest := r.lengths[0]
		r.lengths = r.lengths[1:]
		r.values = r.values[oldest:]
	}
	r.values = append(r.values, vals...)
	r.lengths = append(r.lengths, len(vals))
}

// push appends a single value to the most recent yank, starting a new
// one-value yank if the register is empty. push never evicts.
func (r *Register) push(value string) {
	r.values = append(r.values, value)
	if n := len(r.lengths); n > 0 {
		r.lengths[n-1]++
	} else {
		r.lengths = append(r.lengths, 1)
	}
}

// Values returns the values of the most recent yank, in order, sharing the
// register's backing storage.
func (r *Register) Values() *Values {
	var n int
	if len(r.lengths) > 0 {
		n = r.lengths[len(r.lengths)-1]
	}
	return newSliceValues(r.values[len(r.values)-n:])
}

// LatestValue returns the most recently appended value across the whole
// history. It reports false for an empty register.
func (r *Register) LatestValue() (string, bool) {
	if len(r.values) == 0 {
		return "", false
	}
	return r.values[len(r.values)-1], true
}
