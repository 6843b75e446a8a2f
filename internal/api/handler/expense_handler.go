package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/worklane/hr-system/internal/api/metrics"
	"github.com/worklane/hr-system/internal/core/domain"
	"github.com/worklane/hr-system/internal/core/ports"
)

// ExpenseHandler handles HTTP requests for expense operations.
type ExpenseHandler struct {
	expenses ports.ExpenseService
}

func NewExpenseHandler(expenses ports.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

type createExpenseRequest struct {
	ClientID        string    `json:"client_id" validate:"required"`
	UserID          string    `json:"user_id" validate:"required"`
	UserName        string    `json:"user_name"`
	Amount          float64   `json:"amount" validate:"required,gt=0"`
	Description     string    `json:"description"`
	Category        string    `json:"category" validate:"required"`
	Status          string    `json:"status" validate:"omitempty,oneof=Approved Pending Rejected"`
	DateOfSubmitted time.Time `json:"date_of_submitted"`
	Attachment      string    `json:"attachment"`
	Scan            string    `json:"scan"`
}

// Create submits a new expense claim.
//
// @Summary      Create an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createExpenseRequest  true  "Expense details"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  map[string]string
// @Router       /expenses/create [post]
func (h *ExpenseHandler) Create(c echo.Context) error {
	var req createExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	expense, err := h.expenses.Create(c.Request().Context(), &domain.Expense{
		ClientID:        req.ClientID,
		UserID:          req.UserID,
		UserName:        req.UserName,
		Amount:          req.Amount,
		Description:     req.Description,
		Category:        req.Category,
		Status:          domain.ExpenseStatus(req.Status),
		DateOfSubmitted: req.DateOfSubmitted,
		Attachment:      req.Attachment,
		Scan:            req.Scan,
	})
	if err != nil {
		return err
	}

	metrics.ExpensesCreatedTotal.WithLabelValues(expense.Category).Inc()
	return respond(c, http.StatusCreated, "Expense created successfully", expense)
}

// List returns expenses matching the optional query filters.
//
// @Summary      List expenses
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        client_id          query     string  false  "Exact tenant id"
// @Param        user_id            query     string  false  "Exact owner id"
// @Param        user_name          query     string  false  "Match against user name (case-insensitive)"
// @Param        status             query     string  false  "Exact status"
// @Param        date_of_submitted  query     string  false  "Submission date (RFC 3339)"
// @Success      200  {object}  apiResponse
// @Router       /expenses/list [get]
func (h *ExpenseHandler) List(c echo.Context) error {
	filter, err := expenseFilterFromQuery(c)
	if err != nil {
		return err
	}

	expenses, err := h.expenses.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Expenses fetched successfully", expenses)
}

// ListOwn returns the calling identity's expenses. A user_id filter naming
// anyone other than the caller is rejected.
//
// @Summary      List the caller's expenses
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        status             query     string  false  "Exact status"
// @Param        date_of_submitted  query     string  false  "Submission date (RFC 3339)"
// @Success      200  {object}  apiResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /expenses/my/list [get]
func (h *ExpenseHandler) ListOwn(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	filter, err := expenseFilterFromQuery(c)
	if err != nil {
		return err
	}

	expenses, err := h.expenses.ListOwn(c.Request().Context(), ident, filter)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Expenses fetched successfully", expenses)
}

// Detail returns a single expense by id.
//
// @Summary      Get an expense
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Expense id"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  map[string]string
// @Router       /expenses/{id}/detail [get]
func (h *ExpenseHandler) Detail(c echo.Context) error {
	expense, err := h.expenses.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Expense fetched successfully", expense)
}

// Update applies a partial field set to an expense.
//
// @Summary      Update an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Expense id"
// @Param        body  body      map[string]any  true  "Fields to update"
// @Success      200   {object}  apiResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /expenses/{id}/update [put]
func (h *ExpenseHandler) Update(c echo.Context) error {
	updates := map[string]any{}
	if err := c.Bind(&updates); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	expense, err := h.expenses.Update(c.Request().Context(), c.Param("id"), updates)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Expense updated successfully", expense)
}

// Delete removes an expense.
//
// @Summary      Delete an expense
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Expense id"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  map[string]string
// @Router       /expenses/{id}/delete [delete]
func (h *ExpenseHandler) Delete(c echo.Context) error {
	if err := h.expenses.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Expense deleted successfully", nil)
}

func expenseFilterFromQuery(c echo.Context) (ports.ExpenseFilter, error) {
	filter := ports.ExpenseFilter{
		ClientID: c.QueryParam("client_id"),
		UserID:   c.QueryParam("user_id"),
		UserName: c.QueryParam("user_name"),
		Status:   c.QueryParam("status"),
	}

	if raw := c.QueryParam("date_of_submitted"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return ports.ExpenseFilter{}, echo.NewHTTPError(http.StatusBadRequest, "date_of_submitted must be RFC 3339")
		}
		filter.DateOfSubmitted = t
	}

	return filter, nil
}
