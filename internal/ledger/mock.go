package ledger

// MockStore is an in-memory ledger store for testing.
type MockStore struct {
	Ledger *Ledger

	// Error flags for testing error conditions
	LoadError    error
	PersistError error

	PersistCalls int
}

// Load returns a copy of the mock ledger.
func (m *MockStore) Load() (*Ledger, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	if m.Ledger == nil {
		return &Ledger{}, nil
	}
	// Return a copy to avoid external modifications
	l := &Ledger{Entries: append(m.Ledger.Entries[:0:0], m.Ledger.Entries...)}
	return l, nil
}

// Persist replaces the mock ledger unless PersistError is set.
func (m *MockStore) Persist(l *Ledger) error {
	m.PersistCalls++
	if m.PersistError != nil {
		return m.PersistError
	}
	m.Ledger = &Ledger{Entries: append(l.Entries[:0:0], l.Entries...)}
	return nil
}
