package payroll

import "sync"

// Store keeps payroll records in memory. Update runs its transition under the
// store lock, so each mutation is a read-validate-write transaction; the
// engine operations themselves are pure and copy-on-write.
type Store struct {
	mu      sync.RWMutex
	records []Record
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Insert(record Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record.Clone())
}

func (s *Store) Record(id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, record := range s.records {
		if record.ID == id {
			return record.Clone(), nil
		}
	}
	return Record{}, ErrNotFound
}

func (s *Store) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, 0, len(s.records))
	for _, record := range s.records {
		out = append(out, record.Clone())
	}
	return out
}

// Update applies fn to the record with the given ID and replaces it in place.
// When fn fails the stored value is left untouched.
func (s *Store) Update(id string, fn func(Record) (Record, error)) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, record := range s.records {
		if record.ID != id {
			continue
		}
		next, err := fn(record.Clone())
		if err != nil {
			return Record{}, err
		}
		s.records[i] = next.Clone()
		return next, nil
	}
	return Record{}, ErrNotFound
}
