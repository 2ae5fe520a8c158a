package catalog

import (
	apphttp "detailing_site_backend/internal/http"
	"detailing_site_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

type Module struct{}

var _ apphttp.Module = (*Module)(nil)

func NewModule() *Module { return &Module{} }

func (m *Module) Name() string { return "catalog" }

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/packages", m.listPackages)
}

// PackageListResponse is the payload for GET /api/v1/packages.
type PackageListResponse struct {
	Size     string          `json:"size"`
	Packages []PackageOption `json:"packages"`
}

// listPackages prices every tier for the requested vehicle size.
// GET /api/v1/packages?size=2-door|4-door|suv|large
func (m *Module) listPackages(c *gin.Context) {
	size := c.DefaultQuery("size", "2-door")

	options, err := OptionsForSize(size)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, PackageListResponse{Size: size, Packages: options})
}
