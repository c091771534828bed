package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the public site, the admin panel and the upload
// passthrough on the router.
func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/", handler.Home)
	router.GET("/hakkimizda", handler.About)
	router.GET("/iletisim", handler.Contact)
	router.GET("/set_language/:lang", handler.SetLanguage)
	router.GET("/ilanlar", handler.Browse)
	router.GET("/ilanlar/:id", handler.Detail)

	// Admin-uploaded images are served straight from the managed directory.
	router.Static("/user_custom_upload", handler.uploads.Dir())

	admin := router.Group("/admin")
	{
		admin.GET("/login", handler.LoginForm)
		admin.POST("/login", handler.Login)
		admin.GET("/logout", handler.Logout)

		authed := admin.Group("")
		authed.Use(handler.RequireAdmin)
		{
			authed.GET("", handler.Dashboard)
			authed.GET("/dashboard", handler.Dashboard)

			api := authed.Group("/api")
			api.Use(cors.Default())
			{
				api.GET("/advertisements", handler.APIListings)
				api.POST("/advertisement/:id/toggle_status", handler.ToggleStatus)
			}

			authed.GET("/advertisement/add", handler.AddForm)
			authed.POST("/advertisement/add", handler.Add)
			authed.GET("/advertisement/:id/edit", handler.EditForm)
			authed.POST("/advertisement/:id/edit", handler.Edit)
			authed.POST("/advertisement/:id/delete", handler.Delete)
		}
	}
}
