package v1

import (
	"github.com/gin-gonic/gin"
)

// AdminRouteHandler defines the editing methods of a collection handler.
type AdminRouteHandler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// ChartRouteHandler defines the methods of a chart handler.
type ChartRouteHandler interface {
	AdminRouteHandler
	Get(c *gin.Context)
}

// RegisterAdminRoutes registers create, update and delete for a collection whose items
// are addressed by itemPath (for example "/:slug").
//
// Usage:
//
//	h := handlers.NewCompanyHandler(base, company.NewService(store))
//	RegisterAdminRoutes(admin.Group("/companies"), h, "/:slug")
func RegisterAdminRoutes(group *gin.RouterGroup, handler AdminRouteHandler, itemPath string) {
	group.POST("", handler.Create)
	group.PUT(itemPath, handler.Update)
	group.DELETE(itemPath, handler.Delete)
}

// RegisterChartRoutes registers the chart read and the department edits under group.
// Whether group addresses the holding chart or a subsidiary's is decided by a :slug
// parameter in its path.
func RegisterChartRoutes(group *gin.RouterGroup, handler ChartRouteHandler) {
	group.GET("", handler.Get)
	RegisterAdminRoutes(group, handler, "/:id")
}
