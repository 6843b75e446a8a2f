package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/worklane/hr-system/internal/api/metrics"
	"github.com/worklane/hr-system/internal/core/domain"
	"github.com/worklane/hr-system/internal/core/ports"
)

// AbsenceHandler handles HTTP requests for leave requests.
type AbsenceHandler struct {
	absences ports.AbsenceService
}

func NewAbsenceHandler(absences ports.AbsenceService) *AbsenceHandler {
	return &AbsenceHandler{absences: absences}
}

// Create records a new leave request. The body binds directly onto the
// domain type; required fields are checked in the service.
//
// @Summary      Create an absence
// @Tags         absences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Absence  true  "Absence details"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  map[string]string
// @Router       /absences/create [post]
func (h *AbsenceHandler) Create(c echo.Context) error {
	var absence domain.Absence
	if err := c.Bind(&absence); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.absences.Create(c.Request().Context(), &absence)
	if err != nil {
		return err
	}

	metrics.AbsencesCreatedTotal.Inc()
	return respond(c, http.StatusCreated, "Absence created successfully", created)
}

// List returns absences matching the optional query filters.
//
// @Summary      List absences
// @Tags         absences
// @Produce      json
// @Security     BearerAuth
// @Param        name       query     string  false  "Match against name (case-insensitive)"
// @Param        user_name  query     string  false  "Match against user name (case-insensitive)"
// @Param        status     query     string  false  "Exact status"
// @Param        client_id  query     string  false  "Exact tenant id"
// @Param        user_id    query     string  false  "Exact owner id"
// @Param        from       query     string  false  "Range start (RFC 3339)"
// @Param        to         query     string  false  "Range end (RFC 3339)"
// @Success      200  {object}  apiResponse
// @Router       /absences/list [get]
func (h *AbsenceHandler) List(c echo.Context) error {
	filter := ports.AbsenceFilter{
		Name:     c.QueryParam("name"),
		UserName: c.QueryParam("user_name"),
		Status:   c.QueryParam("status"),
		ClientID: c.QueryParam("client_id"),
		UserID:   c.QueryParam("user_id"),
	}

	for param, dst := range map[string]*time.Time{"from": &filter.From, "to": &filter.To} {
		raw := c.QueryParam(param)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, param+" must be RFC 3339")
		}
		*dst = t
	}

	absences, err := h.absences.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Absences fetched successfully", absences)
}

// Detail returns a single absence by id.
//
// @Summary      Get an absence
// @Tags         absences
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Absence id"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  map[string]string
// @Router       /absences/{id}/detail [get]
func (h *AbsenceHandler) Detail(c echo.Context) error {
	absence, err := h.absences.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Absence fetched successfully", absence)
}

// Update applies a partial field set to an absence.
//
// @Summary      Update an absence
// @Tags         absences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Absence id"
// @Param        body  body      map[string]any  true  "Fields to update"
// @Success      200   {object}  apiResponse
// @Failure      404   {object}  map[string]string
// @Router       /absences/{id}/update [put]
func (h *AbsenceHandler) Update(c echo.Context) error {
	updates := map[string]any{}
	if err := c.Bind(&updates); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	absence, err := h.absences.Update(c.Request().Context(), c.Param("id"), updates)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Absence updated successfully", absence)
}

// Delete removes an absence.
//
// @Summary      Delete an absence
// @Tags         absences
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Absence id"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  map[string]string
// @Router       /absences/{id}/delete [delete]
func (h *AbsenceHandler) Delete(c echo.Context) error {
	if err := h.absences.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Absence deleted successfully", nil)
}
