package models

import "time"

// Employee represents an employee record.
// Employee emails are unique independently of user emails, an employee
// does not need a user account.
type Employee struct {
	ID               int
	Name             string
	Email            string
	DateOfJoining    time.Time
	Career           string
	Address          string
	TrainingRequired bool
}

// CreateEmployeeRequest represents an employee creation request.
// Doj is a Unix timestamp in seconds, fractional values are accepted.
type CreateEmployeeRequest struct {
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Doj              float64 `json:"doj"`
	Career           string  `json:"career"`
	Address          string  `json:"address"`
	TrainingRequired bool    `json:"trainingRequired"`
}

// EmployeeResponse is the wire representation of an employee
type EmployeeResponse struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Doj              int64  `json:"doj"`
	Career           string `json:"career"`
	Address          string `json:"address"`
	TrainingRequired bool   `json:"trainingRequired"`
}

// EmployeeCollection wraps a list of employees.
// The documents field leaves room for pagination metadata later.
type EmployeeCollection struct {
	Documents []EmployeeResponse `json:"documents"`
}

// NewEmployeeResponse converts an employee record to its wire representation
func NewEmployeeResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		Name:             e.Name,
		Email:            e.Email,
		Doj:              e.DateOfJoining.Unix(),
		Career:           e.Career,
		Address:          e.Address,
		TrainingRequired: e.TrainingRequired,
	}
}
