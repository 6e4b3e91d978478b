package auth

import (
	"strings"
	"sync"
	"time"
)

// Directory is the in-memory user store. There is no credential backend; the
// portal runs against a seeded set of demo accounts.
type Directory struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewDirectory() *Directory {
	return &Directory{users: make(map[string]User)}
}

func (d *Directory) Put(user User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[strings.ToLower(user.ID)] = user
}

// Find looks a user up by employee ID, case-insensitively.
func (d *Directory) Find(employeeID string) (User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	user, ok := d.users[strings.ToLower(strings.TrimSpace(employeeID))]
	return user, ok
}

func (d *Directory) StampLogin(employeeID, ip string, at time.Time) (User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	key := strings.ToLower(strings.TrimSpace(employeeID))
	user, ok := d.users[key]
	if !ok {
		return User{}, false
	}
	user.LastLogin = &at
	user.IPAddress = ip
	d.users[key] = user
	return user, true
}
