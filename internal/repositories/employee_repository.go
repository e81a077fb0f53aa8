package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/employeecollab/backend/internal/models"
	"go.uber.org/zap"
)

// employeeRepository implements data access for the employees table
type employeeRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *sql.DB, logger *zap.Logger) *employeeRepository {
	return &employeeRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new employee into the database.
// Returns models.ErrDuplicateEmail when the email unique index rejects the insert.
func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (name, email, date_of_joining, career, address, training_required)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		employee.Name,
		employee.Email,
		employee.DateOfJoining,
		employee.Career,
		employee.Address,
		employee.TrainingRequired,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return models.ErrDuplicateEmail
		}
		r.logger.Error("failed to create employee", zap.Error(err))
		return fmt.Errorf("failed to create employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	employee.ID = int(id)
	return nil
}

// ExistsByEmail checks if an employee exists with the given email
func (r *employeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM employees WHERE email = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	if err != nil {
		r.logger.Error("failed to check email existence", zap.Error(err), zap.String("email", email))
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves all employee records ordered by id
func (r *employeeRepository) GetAll(ctx context.Context) ([]models.Employee, error) {
	query := `
		SELECT id, name, email, date_of_joining, career, address, training_required
		FROM employees
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to get all employees", zap.Error(err))
		return nil, fmt.Errorf("failed to get all employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.Email,
			&e.DateOfJoining,
			&e.Career,
			&e.Address,
			&e.TrainingRequired,
		); err != nil {
			r.logger.Error("failed to scan employee row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("failed to iterate employee rows", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return employees, nil
}

// DeleteAll removes every employee. Used by tests to reset state.
func (r *employeeRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM employees`); err != nil {
		r.logger.Error("failed to delete all employees", zap.Error(err))
		return fmt.Errorf("failed to delete all employees: %w", err)
	}
	return nil
}
