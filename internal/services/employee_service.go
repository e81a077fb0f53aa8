package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/employeecollab/backend/internal/models"
	"go.uber.org/zap"
)

// EmployeeRepository is the interface that wraps methods for employees table data access
type EmployeeRepository interface {
	// Method Create inserts a new employee into the database.
	//
	// "employee" parameter is used to create a new employee.
	//
	// If the email is already taken, models.ErrDuplicateEmail will be returned.
	// If some other error occurs during employee creation, the error will be returned.
	Create(ctx context.Context, employee *models.Employee) error
	// Method ExistsByEmail checks if an employee with such email exists.
	//
	// "email" parameter is used to check if an employee with such email exists.
	//
	// If some error occurs during check, the error will be returned together with "false" value.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Method GetAll retrieves all employee records.
	//
	// If some error occurs during retrieval, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.Employee, error)
}

// employeeService implements employee record business logic
type employeeService struct {
	employeeRepo EmployeeRepository
	logger       *zap.Logger
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo EmployeeRepository, logger *zap.Logger) *employeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Create validates and persists a new employee record and returns its ID
func (s *employeeService) Create(ctx context.Context, req *models.CreateEmployeeRequest) (int, error) {
	normalizedEmail, err := s.checkEmployeeFields(ctx, req)
	if err != nil {
		return 0, err
	}

	employee := &models.Employee{
		Name:             strings.TrimSpace(req.Name),
		Email:            normalizedEmail,
		DateOfJoining:    time.Unix(int64(req.Doj), 0).UTC(),
		Career:           strings.TrimSpace(req.Career),
		Address:          strings.TrimSpace(req.Address),
		TrainingRequired: req.TrainingRequired,
	}

	// The unique index is authoritative under concurrent creations,
	// the repository maps its violation to ErrDuplicateEmail as well.
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return 0, err
	}

	return employee.ID, nil
}

// List returns all employee records wrapped in a documents collection
func (s *employeeService) List(ctx context.Context) (*models.EmployeeCollection, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	documents := make([]models.EmployeeResponse, 0, len(employees))
	for i := range employees {
		documents = append(documents, models.NewEmployeeResponse(&employees[i]))
	}

	return &models.EmployeeCollection{Documents: documents}, nil
}

// checkEmployeeFields validates the creation request and returns the normalized email
func (s *employeeService) checkEmployeeFields(ctx context.Context, req *models.CreateEmployeeRequest) (string, error) {
	if strings.TrimSpace(req.Name) == "" {
		return "", models.NewValidationError("name is required")
	}

	normalizedEmail := strings.TrimSpace(strings.ToLower(req.Email))
	if !emailRegex.MatchString(normalizedEmail) {
		return "", models.NewValidationError("invalid email format")
	}

	if req.Doj <= 0 {
		return "", models.NewValidationError("doj must be a positive unix timestamp")
	}

	if strings.TrimSpace(req.Career) == "" {
		return "", models.NewValidationError("career is required")
	}

	if strings.TrimSpace(req.Address) == "" {
		return "", models.NewValidationError("address is required")
	}

	emailExists, err := s.employeeRepo.ExistsByEmail(ctx, normalizedEmail)
	if err != nil {
		return "", fmt.Errorf("failed to check email: %w", err)
	}
	if emailExists {
		return "", models.ErrDuplicateEmail
	}

	return normalizedEmail, nil
}
