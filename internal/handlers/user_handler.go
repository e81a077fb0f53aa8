package handlers

import (
	"context"
	"net/http"

	"github.com/employeecollab/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic
type AuthService interface {
	// Method Register performs user credentials validation and creation and returns the new user ID.
	//
	// "req" parameter contains name, email, password and role.
	//
	// If the email is already taken, models.ErrDuplicateEmail will be returned.
	// If a field is missing or malformed, a models.ValidationError will be returned.
	Register(ctx context.Context, req *models.RegisterRequest) (int, error)
	// Method Login performs credentials verification and returns the user ID, role and a signed token.
	//
	// "req" parameter contains email and password.
	//
	// If no user has the email, models.ErrEmailNotFound will be returned.
	// If the password does not match, models.ErrInvalidPassword will be returned.
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error)
}

// UserHandler handles registration and login HTTP requests
type UserHandler struct {
	BaseHandler
	authService AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService AuthService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: BaseHandler{Logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all user handler routes
// Note: This assumes the router is already scoped to /api/users
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
}

// Register handles POST /api/users/register
// @Summary Register a new user
// @Description Register a new user with name, email, password and role. Role defaults to employee.
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 200 {object} map[string]int "Created user ID"
// @Failure 400 {object} map[string]string "Validation failure or email already exist"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]int{"user": id})
}

// Login handles POST /api/users/login
// @Summary Login user
// @Description Authenticate with email and password, returns the user ID, role and a signed token
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.LoginResult "Login successful"
// @Failure 400 {object} map[string]string "Unknown email or wrong password"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}
