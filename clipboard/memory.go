package clipboard

// memoryProvider keeps clipboard contents in process memory. It is the
// last-resort backend when no OS clipboard is reachable, and doubles as a
// test fake.
type memoryProvider struct {
	contents map[Type]string
}

// NewMemory returns a provider with in-process storage for both clipboard
// kinds. It never fails.
func NewMemory() Provider {
	return &memoryProvider{contents: make(map[Type]string)}
}

func (p *memoryProvider) Name() string { return "none" }

func (p *memoryProvider) GetContents(t Type) (string, error) {
	return p.contents[t], nil
}

func (p *memoryProvider) SetContents(contents string, t Type) error {
	p.contents[t] = contents
	return nil
}
