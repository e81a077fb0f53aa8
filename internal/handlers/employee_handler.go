package handlers

import (
	"context"
	"net/http"

	"github.com/employeecollab/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// EmployeeService is the interface that wraps methods for employee record business logic
type EmployeeService interface {
	// Method Create validates and persists a new employee record and returns its ID.
	//
	// "req" parameter contains name, email, doj, career, address and trainingRequired.
	//
	// If the email is already taken, models.ErrDuplicateEmail will be returned.
	// If a field is missing or malformed, a models.ValidationError will be returned.
	Create(ctx context.Context, req *models.CreateEmployeeRequest) (int, error)
	// Method List returns all employee records wrapped in a documents collection.
	//
	// If some error occurs during retrieval, the error will be returned together with "nil" value.
	List(ctx context.Context) (*models.EmployeeCollection, error)
}

// EmployeeHandler handles employee-related HTTP requests.
// Both routes require an authenticated admin, enforced by middleware.
type EmployeeHandler struct {
	BaseHandler
	employeeService EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService EmployeeService, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		BaseHandler:     BaseHandler{Logger: logger},
		employeeService: employeeService,
	}
}

// RegisterRoutes registers all employee handler routes
// Note: This assumes the router is already scoped to /api/users
func (h *EmployeeHandler) RegisterRoutes(r chi.Router) {
	r.Post("/newemployee", h.Create)
	r.Get("/allemployee", h.List)
}

// Create handles POST /api/users/newemployee
// @Summary Create a new employee
// @Description Create a new employee record. Requires an admin bearer token in the AUTH_TOKEN header.
// @Tags employees
// @Accept json
// @Produce json
// @Param request body models.CreateEmployeeRequest true "Employee creation request"
// @Success 200 {object} map[string]int "Created employee ID"
// @Failure 400 {object} map[string]string "Validation failure or email already exist"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 403 {object} map[string]string "Not an admin"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /newemployee [post]
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmployeeRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.employeeService.Create(r.Context(), &req)
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]int{"employee": id})
}

// List handles GET /api/users/allemployee
// @Summary List all employees
// @Description List all employee records. Requires an admin bearer token in the AUTH_TOKEN header.
// @Tags employees
// @Produce json
// @Success 200 {object} map[string]models.EmployeeCollection "All employee records"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 403 {object} map[string]string "Not an admin"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /allemployee [get]
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	collection, err := h.employeeService.List(r.Context())
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]*models.EmployeeCollection{"all_employee": collection})
}
