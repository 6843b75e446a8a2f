package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worklane/hr-system/internal/core/ports"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type registerUserRequest struct {
	UserName    string `json:"user_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	FullName    string `json:"full_name" validate:"required"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Password    string `json:"password" validate:"required,min=6"`
	ClientID    string `json:"client_id" validate:"required"`
	Department  string `json:"department"`
	Role        string `json:"role"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
	PhoneNumber string `json:"phone_number"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "User registration details"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Register(c.Request().Context(), ports.RegisterUserInput{
		UserName:    req.UserName,
		Email:       req.Email,
		FullName:    req.FullName,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Password:    req.Password,
		ClientID:    req.ClientID,
		Department:  req.Department,
		Role:        req.Role,
		Status:      req.Status,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "User registered successfully", user)
}

// List returns users matching the optional query filters.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        name        query     string  false  "Match against full name (case-insensitive)"
// @Param        department  query     string  false  "Exact department"
// @Param        status      query     string  false  "Exact status"
// @Param        role        query     string  false  "Exact role"
// @Param        client_id   query     string  false  "Exact tenant id"
// @Success      200  {object}  apiResponse
// @Failure      401  {object}  map[string]string
// @Router       /users/list [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context(), ports.UserFilter{
		Name:       c.QueryParam("name"),
		Department: c.QueryParam("department"),
		Status:     c.QueryParam("status"),
		Role:       c.QueryParam("role"),
		ClientID:   c.QueryParam("client_id"),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Users fetched successfully", users)
}

// Detail returns a single user by id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/detail [get]
func (h *UserHandler) Detail(c echo.Context) error {
	user, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User fetched successfully", user)
}

// Dropdown returns the reduced id/user_name projection for select inputs.
//
// @Summary      List users for dropdowns
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Router       /users/users-dropdown [get]
func (h *UserHandler) Dropdown(c echo.Context) error {
	options, err := h.users.Dropdown(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Users fetched successfully", options)
}

// Update applies a partial field set to a user.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "User id"
// @Param        body  body      map[string]any  true  "Fields to update"
// @Success      200   {object}  apiResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id}/update [put]
func (h *UserHandler) Update(c echo.Context) error {
	updates := map[string]any{}
	if err := c.Bind(&updates); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.Update(c.Request().Context(), c.Param("id"), updates)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User updated successfully", user)
}

// Delete removes a user.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/delete [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User deleted successfully", nil)
}
