package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

const testSecret = "test-secret"

func newTestService(t *testing.T, allowedNetworks []string) *Service {
	t.Helper()
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	dir := NewDirectory()
	dir.Put(User{
		ID:           "EMP001",
		Name:         "Michael Chen",
		Role:         RoleEmployee,
		Department:   "Engineering",
		PasswordHash: hash,
	})
	return NewService(dir, NewActivityLog(), testSecret, 5*time.Minute, allowedNetworks)
}

func TestAuthenticateIssuesToken(t *testing.T) {
	svc := newTestService(t, nil)

	user, token, err := svc.Authenticate(context.Background(), Credentials{
		EmployeeID: "EMP001",
		Password:   "password123",
	}, "127.0.0.1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.LastLogin == nil {
		t.Fatal("expected last login to be stamped")
	}
	if user.IPAddress != "127.0.0.1" {
		t.Fatalf("expected login IP recorded, got %q", user.IPAddress)
	}

	claims, err := svc.ParseSession(token)
	if err != nil {
		t.Fatalf("parse session: %v", err)
	}
	if claims.UserID != "EMP001" || claims.Name != "Michael Chen" || claims.Role != RoleEmployee {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	entries := svc.Activity.Entries()
	if len(entries) != 1 || entries[0].Action != ActivityLogin || !entries[0].Success {
		t.Fatalf("expected one successful login entry, got %v", entries)
	}
}

func TestAuthenticateIsCaseInsensitiveOnEmployeeID(t *testing.T) {
	svc := newTestService(t, nil)

	user, _, err := svc.Authenticate(context.Background(), Credentials{
		EmployeeID: "emp001",
		Password:   "password123",
	}, "127.0.0.1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != "EMP001" {
		t.Fatalf("expected canonical ID EMP001, got %q", user.ID)
	}
}

func TestAuthenticateFieldValidation(t *testing.T) {
	svc := newTestService(t, nil)

	cases := []struct {
		name  string
		creds Credentials
		field string
	}{
		{"missing employee id", Credentials{Password: "password123"}, "employeeId"},
		{"missing password", Credentials{EmployeeID: "EMP001"}, "password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Authenticate(context.Background(), tc.creds, "127.0.0.1")
			var aerr *AuthError
			if !errors.As(err, &aerr) {
				t.Fatalf("expected AuthError, got %v", err)
			}
			if aerr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, aerr.Field)
			}
		})
	}
	if svc.Activity.Len() != 0 {
		t.Fatalf("field validation failures must not be logged, got %d entries", svc.Activity.Len())
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc := newTestService(t, nil)

	_, _, err := svc.Authenticate(context.Background(), Credentials{
		EmployeeID: "EMP001",
		Password:   "wrong",
	}, "127.0.0.1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}

	_, _, err = svc.Authenticate(context.Background(), Credentials{
		EmployeeID: "NOPE001",
		Password:   "password123",
	}, "127.0.0.1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}

	entries := svc.Activity.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected both failures logged, got %d entries", len(entries))
	}
	for _, entry := range entries {
		if entry.Success {
			t.Fatalf("failure entry marked successful: %+v", entry)
		}
	}
	// The unknown-user attempt is the most recent entry.
	if entries[0].EmployeeID != "NOPE001" || entries[0].EmployeeName != "Unknown User" {
		t.Fatalf("unexpected unknown-user entry: %+v", entries[0])
	}
}

func TestAuthenticateEnforcesIPAllowlist(t *testing.T) {
	svc := newTestService(t, []string{"10.0.0.0/8", "127.0.0.1/32"})

	if _, _, err := svc.Authenticate(context.Background(), Credentials{
		EmployeeID: "EMP001",
		Password:   "password123",
	}, "10.1.2.3"); err != nil {
		t.Fatalf("expected 10.1.2.3 allowed, got %v", err)
	}

	_, _, err := svc.Authenticate(context.Background(), Credentials{
		EmployeeID: "EMP001",
		Password:   "password123",
	}, "203.0.113.9")
	if !errors.Is(err, ErrIPNotAllowed) {
		t.Fatalf("expected ErrIPNotAllowed, got %v", err)
	}

	entries := svc.Activity.Entries()
	if entries[0].Success || entries[0].IPAddress != "203.0.113.9" {
		t.Fatalf("expected failed entry for denied IP, got %+v", entries[0])
	}
}

func TestLogoutIsRecorded(t *testing.T) {
	svc := newTestService(t, nil)

	svc.Logout(context.Background(), UserContext{UserID: "EMP001", Name: "Michael Chen", Role: RoleEmployee}, "127.0.0.1")

	entries := svc.Activity.Entries()
	if len(entries) != 1 || entries[0].Action != ActivityLogout || !entries[0].Success {
		t.Fatalf("expected one logout entry, got %v", entries)
	}
}

func TestActivityLogCapsAtMostRecent(t *testing.T) {
	log := NewActivityLog()
	for i := 0; i < maxActivityEntries+50; i++ {
		log.Record(fmt.Sprintf("EMP%03d", i), "Test User", ActivityLogin, "127.0.0.1", true)
	}
	if log.Len() != maxActivityEntries {
		t.Fatalf("expected log capped at %d, got %d", maxActivityEntries, log.Len())
	}
	entries := log.Entries()
	// Newest entry first, oldest 50 dropped.
	if entries[0].EmployeeID != fmt.Sprintf("EMP%03d", maxActivityEntries+49) {
		t.Fatalf("expected newest entry first, got %q", entries[0].EmployeeID)
	}
	if entries[len(entries)-1].EmployeeID != fmt.Sprintf("EMP%03d", 50) {
		t.Fatalf("expected oldest retained entry EMP050, got %q", entries[len(entries)-1].EmployeeID)
	}
}

func TestParseTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(testSecret, Claims{UserID: "EMP001", Name: "Michael Chen", Role: RoleEmployee}, time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
	if _, err := ParseToken(testSecret, token+"x"); err == nil {
		t.Fatal("expected error for tampered token")
	}

	expired, err := GenerateToken(testSecret, Claims{UserID: "EMP001"}, -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := ParseToken(testSecret, expired); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestRolePermissions(t *testing.T) {
	cases := []struct {
		role       string
		permission string
		want       bool
	}{
		{RoleHRAdmin, PermLeaveApprove, true},
		{RoleHRAdmin, PermPayrollAdjust, true},
		{RoleHRAdmin, PermActivityRead, true},
		{RoleEmployee, PermLeaveWrite, true},
		{RoleEmployee, PermLeaveApprove, false},
		{RoleEmployee, PermPayrollAdjust, false},
		{RoleIntern, PermLeaveWrite, true},
		{RoleIntern, PermActivityRead, false},
		{RoleVPOps, PermLeaveApprove, true},
		{RoleVPOps, PermLeaveWrite, false},
		{RoleITHead, PermLeaveApprove, true},
		{RoleITHead, PermPayrollStatus, false},
		{"unknown-role", PermLeaveRead, false},
	}
	for _, tc := range cases {
		if got := RoleHasPermission(tc.role, tc.permission); got != tc.want {
			t.Fatalf("RoleHasPermission(%q, %q) = %v, want %v", tc.role, tc.permission, got, tc.want)
		}
	}
}
