package catalog

// Mock is an in-memory test double for Store.
type Mock struct {
	places  []Place
	nextID  int64
	ListErr error
	closed  bool
}

// NewMock creates a mock holding places, assigning ids to those without one.
func NewMock(places ...Place) *Mock {
	m := &Mock{}
	for _, p := range places {
		m.add(p)
	}
	return m
}

func (m *Mock) add(p Place) int64 {
	if p.ID == 0 {
		m.nextID++
		p.ID = m.nextID
	} else if p.ID > m.nextID {
		m.nextID = p.ID
	}
	m.places = append(m.places, p)
	return p.ID
}

func (m *Mock) List() ([]Place, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]Place, len(m.places))
	copy(out, m.places)
	return out, nil
}

func (m *Mock) Get(id int64) (Place, error) {
	for _, p := range m.places {
		if p.ID == id {
			return p, nil
		}
	}
	return Place{}, ErrNotFound
}

func (m *Mock) Add(p Place) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return m.add(p), nil
}

func (m *Mock) Seed(places []Place) (int, error) {
	if len(m.places) > 0 {
		return 0, nil
	}
	for _, p := range places {
		m.add(p)
	}
	return len(places), nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	return m.closed
}

var _ Interface = (*Mock)(nil)
