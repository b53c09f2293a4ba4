package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"orgbook.app/api-server/internal/http/dto"
	"orgbook.app/api-server/internal/http/middleware"
	"orgbook.app/api-server/internal/service"
)

type OrganizationHandler struct {
	orgService service.OrganizationService
}

func NewOrganizationHandler(orgService service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

func (h *OrganizationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	orgs, err := h.orgService.List(ctx, middleware.GetTenantID(ctx))
	if err != nil {
		slog.ErrorContext(ctx, "failed to list organizations", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list organizations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"organizations": dto.ToOrganizationResponses(orgs)})
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := parseID(c)
	if !ok {
		return
	}

	org, err := h.orgService.Get(ctx, middleware.GetTenantID(ctx), orgID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to get organization", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get organization"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.OrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	org, err := h.orgService.Create(ctx, middleware.GetTenantID(ctx), req.Fields())
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		slog.ErrorContext(ctx, "failed to create organization", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create organization"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(org))
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.OrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	org, err := h.orgService.Update(ctx, middleware.GetTenantID(ctx), orgID, req.Fields())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
		default:
			slog.ErrorContext(ctx, "failed to update organization", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update organization"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

func (h *OrganizationHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.orgService.Delete(ctx, middleware.GetTenantID(ctx), orgID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to delete organization", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete organization"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// parseID reads the :id path parameter. A non-numeric id can never match a
// row, so it gets the same 404 as an absent one.
func parseID(c *gin.Context) (int64, bool) {
	orgID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
		return 0, false
	}
	return orgID, true
}
