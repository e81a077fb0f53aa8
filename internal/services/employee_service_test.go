package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/employeecollab/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockEmployeeRepository is a mock implementation of EmployeeRepository
type mockEmployeeRepository struct {
	employees           []models.Employee
	createErr           error
	getAllErr           error
	existsByEmailResult bool
	existsByEmailError  error
	createdEmployee     *models.Employee
}

func (m *mockEmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	if m.createErr != nil {
		return m.createErr
	}
	employee.ID = 1
	m.createdEmployee = employee
	return nil
}

func (m *mockEmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailError != nil {
		return false, m.existsByEmailError
	}
	return m.existsByEmailResult, nil
}

func (m *mockEmployeeRepository) GetAll(ctx context.Context) ([]models.Employee, error) {
	if m.getAllErr != nil {
		return nil, m.getAllErr
	}
	return m.employees, nil
}

func validCreateRequest() *models.CreateEmployeeRequest {
	return &models.CreateEmployeeRequest{
		Name:             "John Doe",
		Email:            "johndoe@example.com",
		Doj:              float64(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Unix()),
		Career:           "Software Engineer",
		Address:          "123 Main St, Anytown USA",
		TrainingRequired: true,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name          string
		mutate        func(*models.CreateEmployeeRequest)
		employeeRepo  *mockEmployeeRepository
		expectedError error
		errorContains string
	}{
		{
			name:         "success",
			mutate:       func(r *models.CreateEmployeeRequest) {},
			employeeRepo: &mockEmployeeRepository{},
		},
		{
			name: "fractional doj is truncated to seconds",
			mutate: func(r *models.CreateEmployeeRequest) {
				r.Doj += 0.5
			},
			employeeRepo: &mockEmployeeRepository{},
		},
		{
			name: "missing name",
			mutate: func(r *models.CreateEmployeeRequest) {
				r.Name = "  "
			},
			employeeRepo:  &mockEmployeeRepository{},
			errorContains: "name is required",
		},
		{
			name: "invalid email",
			mutate: func(r *models.CreateEmployeeRequest) {
				r.Email = "not-an-email"
			},
			employeeRepo:  &mockEmployeeRepository{},
			errorContains: "invalid email format",
		},
		{
			name: "missing doj",
			mutate: func(r *models.CreateEmployeeRequest) {
				r.Doj = 0
			},
			employeeRepo:  &mockEmployeeRepository{},
			errorContains: "doj must be a positive unix timestamp",
		},
		{
			name: "missing career",
			mutate: func(r *models.CreateEmployeeRequest) {
				r.Career = ""
			},
			employeeRepo:  &mockEmployeeRepository{},
			errorContains: "career is required",
		},
		{
			name: "missing address",
			mutate: func(r *models.CreateEmployeeRequest) {
				r.Address = ""
			},
			employeeRepo:  &mockEmployeeRepository{},
			errorContains: "address is required",
		},
		{
			name:          "duplicate email on pre-check",
			mutate:        func(r *models.CreateEmployeeRequest) {},
			employeeRepo:  &mockEmployeeRepository{existsByEmailResult: true},
			expectedError: models.ErrDuplicateEmail,
		},
		{
			name:          "duplicate email from unique index",
			mutate:        func(r *models.CreateEmployeeRequest) {},
			employeeRepo:  &mockEmployeeRepository{createErr: models.ErrDuplicateEmail},
			expectedError: models.ErrDuplicateEmail,
		},
		{
			name:          "repository error on exists check",
			mutate:        func(r *models.CreateEmployeeRequest) {},
			employeeRepo:  &mockEmployeeRepository{existsByEmailError: errors.New("database error")},
			errorContains: "failed to check email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEmployeeService(tt.employeeRepo, logger)

			req := validCreateRequest()
			tt.mutate(req)

			id, err := svc.Create(context.Background(), req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Zero(t, id)
				return
			}
			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Zero(t, id)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, id)
			require.NotNil(t, tt.employeeRepo.createdEmployee)
			assert.Equal(t, "johndoe@example.com", tt.employeeRepo.createdEmployee.Email)
			assert.Equal(t, int64(req.Doj), tt.employeeRepo.createdEmployee.DateOfJoining.Unix())
		})
	}
}

func TestEmployeeService_List(t *testing.T) {
	logger := zap.NewNop()
	doj := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		repo := &mockEmployeeRepository{
			employees: []models.Employee{
				{
					ID:               1,
					Name:             "John Doe",
					Email:            "johndoe@example.com",
					DateOfJoining:    doj,
					Career:           "Software Engineer",
					Address:          "123 Main St",
					TrainingRequired: true,
				},
				{
					ID:               2,
					Name:             "Jane Doe",
					Email:            "janedoe@example.com",
					DateOfJoining:    doj,
					Career:           "Designer",
					Address:          "456 Oak St",
					TrainingRequired: false,
				},
			},
		}
		svc := NewEmployeeService(repo, logger)

		collection, err := svc.List(context.Background())

		require.NoError(t, err)
		require.NotNil(t, collection)
		require.Len(t, collection.Documents, 2)
		assert.Equal(t, 1, collection.Documents[0].ID)
		assert.Equal(t, "johndoe@example.com", collection.Documents[0].Email)
		assert.Equal(t, doj.Unix(), collection.Documents[0].Doj)
		assert.True(t, collection.Documents[0].TrainingRequired)
		assert.Equal(t, 2, collection.Documents[1].ID)
	})

	t.Run("empty store returns empty documents", func(t *testing.T) {
		svc := NewEmployeeService(&mockEmployeeRepository{}, logger)

		collection, err := svc.List(context.Background())

		require.NoError(t, err)
		require.NotNil(t, collection)
		assert.NotNil(t, collection.Documents)
		assert.Empty(t, collection.Documents)
	})

	t.Run("repository error", func(t *testing.T) {
		svc := NewEmployeeService(&mockEmployeeRepository{getAllErr: errors.New("database error")}, logger)

		collection, err := svc.List(context.Background())

		assert.Error(t, err)
		assert.Nil(t, collection)
	})
}
