package auth

import (
	"context"
	"net/netip"
	"strings"
	"time"
)

type Service struct {
	Directory *Directory
	Activity  *ActivityLog

	secret  string
	ttl     time.Duration
	allowed []netip.Prefix
}

func NewService(directory *Directory, activity *ActivityLog, secret string, ttl time.Duration, allowedNetworks []string) *Service {
	var allowed []netip.Prefix
	for _, cidr := range allowedNetworks {
		if prefix, err := netip.ParsePrefix(strings.TrimSpace(cidr)); err == nil {
			allowed = append(allowed, prefix)
		}
	}
	return &Service{
		Directory: directory,
		Activity:  activity,
		secret:    secret,
		ttl:       ttl,
		allowed:   allowed,
	}
}

func (s *Service) SessionTimeout() time.Duration {
	return s.ttl
}

// Authenticate resolves demo credentials to a user and issues a session token.
// Failed attempts are recorded in the activity log before the error returns.
func (s *Service) Authenticate(ctx context.Context, creds Credentials, clientIP string) (User, string, error) {
	if strings.TrimSpace(creds.EmployeeID) == "" {
		return User{}, "", &AuthError{Field: "employeeId", Reason: "employee ID is required"}
	}
	if strings.TrimSpace(creds.Password) == "" {
		return User{}, "", &AuthError{Field: "password", Reason: "password is required"}
	}

	user, ok := s.Directory.Find(creds.EmployeeID)
	if !ok {
		s.Activity.Record(creds.EmployeeID, "Unknown User", ActivityLogin, clientIP, false)
		return User{}, "", ErrInvalidCredentials
	}

	if err := CheckPassword(user.PasswordHash, creds.Password); err != nil {
		s.Activity.Record(user.ID, user.Name, ActivityLogin, clientIP, false)
		return User{}, "", ErrInvalidCredentials
	}

	if !s.ipAllowed(clientIP) {
		s.Activity.Record(user.ID, user.Name, ActivityLogin, clientIP, false)
		return User{}, "", ErrIPNotAllowed
	}

	stamped, _ := s.Directory.StampLogin(user.ID, clientIP, time.Now().UTC())
	s.Activity.Record(user.ID, user.Name, ActivityLogin, clientIP, true)

	token, err := GenerateToken(s.secret, Claims{UserID: user.ID, Name: user.Name, Role: user.Role}, s.ttl)
	if err != nil {
		return User{}, "", err
	}
	return stamped, token, nil
}

func (s *Service) Logout(ctx context.Context, user UserContext, clientIP string) {
	s.Activity.Record(user.UserID, user.Name, ActivityLogout, clientIP, true)
}

func (s *Service) ParseSession(token string) (*Claims, error) {
	return ParseToken(s.secret, token)
}

func (s *Service) ipAllowed(clientIP string) bool {
	if len(s.allowed) == 0 {
		return true
	}
	addr, err := netip.ParseAddr(strings.TrimSpace(clientIP))
	if err != nil {
		return false
	}
	for _, prefix := range s.allowed {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
