// README: Travel package generation handlers.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"venueplus/internal/modules/packages"
)

// PackageService is the slice of the packages module the handler needs.
type PackageService interface {
	Generate(ctx context.Context, req packages.PackageRequest) (*packages.TravelPackage, error)
	Get(ctx context.Context, id string) (*packages.TravelPackage, error)
}

type PackageHandler struct {
	svc   PackageService
	quota QuotaGuard
}

func NewPackageHandler(svc PackageService, quota QuotaGuard) *PackageHandler {
	return &PackageHandler{svc: svc, quota: quota}
}

type generatePackageReq struct {
	UID     string                  `json:"uid"`
	Package packages.PackageRequest `json:"package"`
}

// Generate handles POST /api/packages/generate.
func (h *PackageHandler) Generate(c *gin.Context) {
	var req generatePackageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.UID = strings.TrimSpace(req.UID)
	if !isValidUserID(req.UID) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	if h.quota != nil {
		if err := h.quota.Consume(ctx, req.UID); err != nil {
			writeGenerationError(c, err)
			return
		}
	}

	pkg, err := h.svc.Generate(ctx, req.Package)
	if err != nil {
		writeGenerationError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, pkg)
}

// Get handles GET /api/packages/:id.
func (h *PackageHandler) Get(c *gin.Context) {
	id := c.Param("id")
	pkg, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeGenerationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, pkg)
}
