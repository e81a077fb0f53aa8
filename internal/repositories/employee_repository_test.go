package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/employeecollab/backend/internal/models"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupEmployeeTestRepository creates an employee repository with a mock database
func setupEmployeeTestRepository(t *testing.T) (*employeeRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewEmployeeRepository(db, zap.NewNop())

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestEmployeeRepository_Create(t *testing.T) {
	doj := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		employee      *models.Employee
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedID    int
	}{
		{
			name: "success",
			employee: &models.Employee{
				Name:             "John Doe",
				Email:            "johndoe@example.com",
				DateOfJoining:    doj,
				Career:           "Software Engineer",
				Address:          "123 Main St, Anytown USA",
				TrainingRequired: true,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO employees`).
					WithArgs("John Doe", "johndoe@example.com", doj, "Software Engineer", "123 Main St, Anytown USA", true).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			expectedID: 1,
		},
		{
			name: "duplicate email mapped to domain error",
			employee: &models.Employee{
				Name:             "Jane Doe",
				Email:            "johndoe@example.com",
				DateOfJoining:    doj,
				Career:           "Software Developer",
				Address:          "456 Oak St, Anytown USA",
				TrainingRequired: false,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO employees`).
					WithArgs("Jane Doe", "johndoe@example.com", doj, "Software Developer", "456 Oak St, Anytown USA", false).
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'johndoe@example.com' for key 'email'"})
			},
			expectedError: models.ErrDuplicateEmail,
		},
		{
			name: "database error on insert",
			employee: &models.Employee{
				Name:             "John Doe",
				Email:            "johndoe@example.com",
				DateOfJoining:    doj,
				Career:           "Software Engineer",
				Address:          "123 Main St, Anytown USA",
				TrainingRequired: true,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO employees`).
					WithArgs("John Doe", "johndoe@example.com", doj, "Software Engineer", "123 Main St, Anytown USA", true).
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEmployeeTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.employee)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, models.ErrDuplicateEmail) {
					assert.ErrorIs(t, err, models.ErrDuplicateEmail)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.employee.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmployeeRepository_ExistsByEmail(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		setupMock      func(sqlmock.Sqlmock)
		expectedError  bool
		expectedExists bool
	}{
		{
			name:  "email exists",
			email: "existing@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
				mock.ExpectQuery(`SELECT EXISTS\(SELECT \* FROM employees WHERE email = \?\)`).
					WithArgs("existing@example.com").
					WillReturnRows(rows)
			},
			expectedExists: true,
		},
		{
			name:  "email does not exist",
			email: "nonexistent@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"exists"}).AddRow(false)
				mock.ExpectQuery(`SELECT EXISTS\(SELECT \* FROM employees WHERE email = \?\)`).
					WithArgs("nonexistent@example.com").
					WillReturnRows(rows)
			},
			expectedExists: false,
		},
		{
			name:  "database error",
			email: "johndoe@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS\(SELECT \* FROM employees WHERE email = \?\)`).
					WithArgs("johndoe@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEmployeeTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			exists, err := repo.ExistsByEmail(context.Background(), tt.email)

			if tt.expectedError {
				assert.Error(t, err)
				assert.False(t, exists)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedExists, exists)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmployeeRepository_GetAll(t *testing.T) {
	doj := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success with rows",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "email", "date_of_joining", "career", "address", "training_required"}).
					AddRow(1, "John Doe", "johndoe@example.com", doj, "Software Engineer", "123 Main St", true).
					AddRow(2, "Jane Doe", "janedoe@example.com", doj, "Designer", "456 Oak St", false)
				mock.ExpectQuery(`SELECT id, name, email, date_of_joining, career, address, training_required FROM employees ORDER BY id`).
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name: "success with no rows",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "email", "date_of_joining", "career", "address", "training_required"})
				mock.ExpectQuery(`SELECT id, name, email, date_of_joining, career, address, training_required FROM employees ORDER BY id`).
					WillReturnRows(rows)
			},
			expectedCount: 0,
		},
		{
			name: "database query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, email, date_of_joining, career, address, training_required FROM employees ORDER BY id`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "scan error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "email", "date_of_joining", "career", "address", "training_required"}).
					AddRow("invalid", "John Doe", "johndoe@example.com", doj, "Software Engineer", "123 Main St", true)
				mock.ExpectQuery(`SELECT id, name, email, date_of_joining, career, address, training_required FROM employees ORDER BY id`).
					WillReturnRows(rows)
			},
			expectedError: true,
		},
		{
			name: "rows iteration error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "email", "date_of_joining", "career", "address", "training_required"}).
					AddRow(1, "John Doe", "johndoe@example.com", doj, "Software Engineer", "123 Main St", true).
					RowError(0, errors.New("row error"))
				mock.ExpectQuery(`SELECT id, name, email, date_of_joining, career, address, training_required FROM employees ORDER BY id`).
					WillReturnRows(rows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEmployeeTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			employees, err := repo.GetAll(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, employees)
			} else {
				assert.NoError(t, err)
				assert.Len(t, employees, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmployeeRepository_DeleteAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupEmployeeTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`DELETE FROM employees`).
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := repo.DeleteAll(context.Background())

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupEmployeeTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`DELETE FROM employees`).
			WillReturnError(errors.New("database error"))

		err := repo.DeleteAll(context.Background())

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
