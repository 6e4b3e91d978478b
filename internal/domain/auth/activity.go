package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxActivityEntries caps the login-activity log; older entries fall off.
const maxActivityEntries = 1000

// ActivityLog is a bounded, most-recent-first log of login and logout events.
type ActivityLog struct {
	mu      sync.RWMutex
	entries []LoginActivity
}

func NewActivityLog() *ActivityLog {
	return &ActivityLog{}
}

func (l *ActivityLog) Record(employeeID, employeeName, action, ip string, success bool) LoginActivity {
	entry := LoginActivity{
		ID:           uuid.NewString(),
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Action:       action,
		Timestamp:    time.Now().UTC(),
		IPAddress:    ip,
		Success:      success,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append([]LoginActivity{entry}, l.entries...)
	if len(l.entries) > maxActivityEntries {
		l.entries = l.entries[:maxActivityEntries]
	}
	return entry
}

func (l *ActivityLog) Entries() []LoginActivity {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]LoginActivity, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *ActivityLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
