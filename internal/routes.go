package internal

import "github.com/gin-gonic/gin"

// SetupRouter wires the full route table. Shared by main and the API tests.
func SetupRouter(store Store, cfg Config) *gin.Engine {
	r := gin.Default()

	// Frontend static
	r.Static("/static", cfg.StaticDir)
	for _, page := range []string{"/", "/login", "/admin"} {
		r.GET(page, func(c *gin.Context) { c.File(cfg.StaticDir + "/index.html") })
	}

	r.GET("/uploads/:filename", ServeUpload(cfg.UploadDir))

	api := r.Group("/api")
	{
		api.POST("/registrations", CreateRegistration(store))
		api.GET("/registrations/stats", GetRegistrationStats(store))

		api.POST("/login", Login(store, cfg.SessionSecret, cfg.CookieSecure))
		api.POST("/logout", Logout(cfg.CookieSecure))
		api.GET("/auth/check", CheckAuth(cfg.SessionSecret))

		api.GET("/photos", ListPhotos(store))
		api.GET("/documents", ListDocuments(store))

		// admin
		admin := api.Group("", Auth(cfg.SessionSecret))
		{
			admin.GET("/registrations", ListRegistrations(store))
			admin.PUT("/registrations/:id", UpdateRegistration(store))
			admin.DELETE("/registrations/:id", DeleteRegistration(store))

			admin.POST("/photos", UploadPhoto(store, cfg.UploadDir))
			admin.DELETE("/photos/:id", DeletePhoto(store, cfg.UploadDir))
			admin.POST("/documents", UploadDocument(store, cfg.UploadDir))
			admin.DELETE("/documents/:id", DeleteDocument(store, cfg.UploadDir))

			admin.GET("/admin/logs", AdminLogs(store))
		}
	}

	return r
}
