package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worklane/hr-system/internal/api/metrics"
	"github.com/worklane/hr-system/internal/core/domain"
	"github.com/worklane/hr-system/internal/core/ports"
)

// ActivityHandler handles HTTP requests for attendance logs.
type ActivityHandler struct {
	activities ports.ActivityService
}

func NewActivityHandler(activities ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// Create records a new attendance log. The body binds directly onto the
// domain type; required fields are checked in the service.
//
// @Summary      Create an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Activity  true  "Activity details"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  map[string]string
// @Router       /activities/create [post]
func (h *ActivityHandler) Create(c echo.Context) error {
	var activity domain.Activity
	if err := c.Bind(&activity); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.activities.Create(c.Request().Context(), &activity)
	if err != nil {
		return err
	}

	metrics.ActivitiesCreatedTotal.Inc()
	return respond(c, http.StatusCreated, "Activity created successfully", created)
}

// List returns activities matching the optional query filters.
//
// @Summary      List activities
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        name       query     string  false  "Match against name (case-insensitive)"
// @Param        status     query     string  false  "Exact status"
// @Param        work_type  query     string  false  "Exact work type"
// @Param        client_id  query     string  false  "Exact tenant id"
// @Param        user_id    query     string  false  "Exact owner id"
// @Success      200  {object}  apiResponse
// @Router       /activities/list [get]
func (h *ActivityHandler) List(c echo.Context) error {
	activities, err := h.activities.List(c.Request().Context(), ports.ActivityFilter{
		Name:     c.QueryParam("name"),
		Status:   c.QueryParam("status"),
		WorkType: c.QueryParam("work_type"),
		ClientID: c.QueryParam("client_id"),
		UserID:   c.QueryParam("user_id"),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Activities fetched successfully", activities)
}

// Detail returns a single activity by id.
//
// @Summary      Get an activity
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Activity id"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  map[string]string
// @Router       /activities/{id}/detail [get]
func (h *ActivityHandler) Detail(c echo.Context) error {
	activity, err := h.activities.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Activity fetched successfully", activity)
}

// Update applies a partial field set to an activity.
//
// @Summary      Update an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Activity id"
// @Param        body  body      map[string]any  true  "Fields to update"
// @Success      200   {object}  apiResponse
// @Failure      404   {object}  map[string]string
// @Router       /activities/{id}/update [put]
func (h *ActivityHandler) Update(c echo.Context) error {
	updates := map[string]any{}
	if err := c.Bind(&updates); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	activity, err := h.activities.Update(c.Request().Context(), c.Param("id"), updates)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Activity updated successfully", activity)
}

// Delete removes an activity.
//
// @Summary      Delete an activity
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Activity id"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  map[string]string
// @Router       /activities/{id}/delete [delete]
func (h *ActivityHandler) Delete(c echo.Context) error {
	if err := h.activities.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Activity deleted successfully", nil)
}
