package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
)

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// List handles GET /applications: the caller's applications, newest first.
//
// @Summary      List own applications
// @Tags         applications
// @Produce      json
// @Success      200  {array}   applicationResponse
// @Failure      401  {object}  errorResponse
// @Router       /applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	apps, err := h.service.ListByUser(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationListResponse(apps))
}

// Create handles POST /applications (applicants only).
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      createApplicationRequest  true  "Application details"
// @Success      201   {object}  applicationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /applications [post]
func (h *ApplicationHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createApplicationRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("invalid payload")
	}

	app, err := h.service.Create(c.Request().Context(), identity, ports.CreateApplicationInput{
		JobID:       req.JobID,
		Title:       req.Title,
		CompanyName: req.CompanyName,
		JobLink:     req.JobLink,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toApplicationResponse(app))
}

// Get handles GET /applications/:id (owner only).
//
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  applicationResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "Invalid application ID")
	if err != nil {
		return err
	}

	app, err := h.service.Get(c.Request().Context(), identity, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationResponse(app))
}

// Update handles PUT /applications/:id (owner only).
//
// @Summary      Update an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "Application ID"
// @Param        body  body      updateApplicationRequest  true  "Fields to update"
// @Success      200   {object}  applicationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /applications/{id} [put]
func (h *ApplicationHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "Invalid application ID")
	if err != nil {
		return err
	}

	var req updateApplicationRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	patch := ports.ApplicationPatch{
		Notes:       req.Notes,
		Title:       req.Title,
		CompanyName: req.CompanyName,
		JobLink:     req.JobLink,
	}
	if req.Status != nil {
		status := domain.ApplicationStatus(*req.Status)
		patch.Status = &status
	}

	app, err := h.service.Update(c.Request().Context(), identity, id, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationResponse(app))
}

// Delete handles DELETE /applications/:id (owner only).
//
// @Summary      Delete an application
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "Invalid application ID")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Application deleted successfully"})
}
