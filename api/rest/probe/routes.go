package probe

import (
	"codeberg.org/algopatterns/apierrors/internal/auth"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, authenticator *auth.Authenticator) {
	probe := router.Group("/probe")

	probe.GET("/kinds", ListKinds)
	probe.GET("/kinds/:kind", RaiseKind)
	probe.POST("/validate", Validate)
	probe.GET("/items/:id", GetItem)

	admin := probe.Group("/admin")
	admin.Use(authenticator.Middleware(), auth.AdminMiddleware())
	admin.GET("", WhoAmI)
}
