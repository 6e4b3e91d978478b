package auth

import "time"

type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	Department   string     `json:"department,omitempty"`
	Email        string     `json:"email,omitempty"`
	Position     string     `json:"position,omitempty"`
	IPAddress    string     `json:"ipAddress,omitempty"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	PasswordHash string     `json:"-"`
}

type Credentials struct {
	EmployeeID string `json:"employeeId"`
	Password   string `json:"password"`
}

type LoginActivity struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Action       string    `json:"action"`
	Timestamp    time.Time `json:"timestamp"`
	IPAddress    string    `json:"ipAddress"`
	Success      bool      `json:"success"`
}

const (
	ActivityLogin  = "login"
	ActivityLogout = "logout"
)

// UserContext is the resolved identity handed to the engines and handlers.
type UserContext struct {
	UserID string
	Name   string
	Role   string
}
