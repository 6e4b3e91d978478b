package leave

import "sync"

type balanceKey struct {
	EmployeeID string
	Year       int
}

// Store keeps requests and balances in memory. Requests are ordered most
// recent first and are never deleted. Update runs its transition under the
// store lock, so each mutation is a read-validate-write transaction.
type Store struct {
	mu       sync.RWMutex
	requests []LeaveRequest
	balances map[balanceKey]Balance
}

func NewStore() *Store {
	return &Store{balances: make(map[balanceKey]Balance)}
}

func (s *Store) InsertRequest(req LeaveRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append([]LeaveRequest{req.Clone()}, s.requests...)
}

func (s *Store) Request(id string) (LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, req := range s.requests {
		if req.ID == id {
			return req.Clone(), nil
		}
	}
	return LeaveRequest{}, ErrNotFound
}

func (s *Store) Requests() []LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]LeaveRequest, 0, len(s.requests))
	for _, req := range s.requests {
		out = append(out, req.Clone())
	}
	return out
}

// Update applies fn to the request with the given ID and replaces it in place.
// When fn fails the stored value is left untouched.
func (s *Store) Update(id string, fn func(LeaveRequest) (LeaveRequest, error)) (LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, req := range s.requests {
		if req.ID != id {
			continue
		}
		next, err := fn(req.Clone())
		if err != nil {
			return LeaveRequest{}, err
		}
		s.requests[i] = next.Clone()
		return next, nil
	}
	return LeaveRequest{}, ErrNotFound
}

func (s *Store) PutBalance(balance Balance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[balanceKey{EmployeeID: balance.EmployeeID, Year: balance.Year}] = balance
}

func (s *Store) Balance(employeeID string, year int) (Balance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	balance, ok := s.balances[balanceKey{EmployeeID: employeeID, Year: year}]
	return balance, ok
}

// DeductBalance removes days from one category, clamping at zero. It reports
// whether clamping occurred; a missing balance row is a no-op.
func (s *Store) DeductBalance(employeeID string, year int, leaveType string, days int) (Balance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := balanceKey{EmployeeID: employeeID, Year: year}
	balance, ok := s.balances[key]
	if !ok {
		return Balance{}, false
	}
	next, clamped := balance.Deduct(leaveType, days)
	s.balances[key] = next
	return next, clamped
}
