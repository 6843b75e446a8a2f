package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worklane/hr-system/internal/core/ports"
)

// ClientHandler handles HTTP requests for tenant management.
type ClientHandler struct {
	clients ports.ClientService
}

func NewClientHandler(clients ports.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

type createClientRequest struct {
	ClientID    string `json:"client_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Description string `json:"description"`
}

// Create registers a new tenant.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /clients/create [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.clients.Create(c.Request().Context(), ports.CreateClientInput{
		ClientID:    req.ClientID,
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Client created successfully", client)
}

// List returns clients matching the optional query filters.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        name       query     string  false  "Match against name (case-insensitive)"
// @Param        client_id  query     string  false  "Exact tenant id"
// @Success      200  {object}  apiResponse
// @Router       /clients/list [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.clients.List(c.Request().Context(), ports.ClientFilter{
		Name:     c.QueryParam("name"),
		ClientID: c.QueryParam("client_id"),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Clients fetched successfully", clients)
}

// Detail returns a single client by id.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id}/detail [get]
func (h *ClientHandler) Detail(c echo.Context) error {
	client, err := h.clients.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Client fetched successfully", client)
}

// Update applies a partial field set to a client.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Client id"
// @Param        body  body      map[string]any  true  "Fields to update"
// @Success      200   {object}  apiResponse
// @Failure      404   {object}  map[string]string
// @Router       /clients/{id}/update [put]
func (h *ClientHandler) Update(c echo.Context) error {
	updates := map[string]any{}
	if err := c.Bind(&updates); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	client, err := h.clients.Update(c.Request().Context(), c.Param("id"), updates)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Client updated successfully", client)
}

// Delete removes a client.
//
// @Summary      Delete a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id}/delete [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.clients.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Client deleted successfully", nil)
}
