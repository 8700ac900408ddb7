package internal

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/fcurti/falegnameria-backend/internal/handler"
	"github.com/fcurti/falegnameria-backend/internal/middleware"
	"github.com/fcurti/falegnameria-backend/pkg/config"
)

type Backend struct {
	R *gin.Engine
}

func Register() *Backend {
	s := new(Backend)
	s.R = gin.Default()

	conf := config.GetConfig()

	// Flash messages ride in a signed cookie session; the admin session
	// itself is a separate token cookie checked by the middleware.
	store := cookie.NewStore([]byte(conf.Auth.SessionSecret))
	s.R.Use(sessions.Sessions("curti_flash", store))

	// Enable CORS for http://localhost:XXXX in debug mode
	if config.IsDebugMode() {
		fe := os.Getenv("CURTI_FE_PORT")
		if fe != "" {
			url := "http://localhost:" + fe
			corsConf := cors.DefaultConfig()
			corsConf.AllowOrigins = []string{url}
			corsConf.AllowCredentials = true
			s.R.Use(cors.New(corsConf))
		}
	}

	s.R.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "ok",
		})
	})

	// Uploaded images are served straight out of the upload directory.
	s.R.Static(conf.Storage.UploadPrefix, conf.Storage.UploadDir)

	s.RegisterService()

	return s
}

func (b *Backend) RegisterService() {
	managers := registerManagers(handler.RegisterConfig{})

	///////////////////////////////////////
	//// Public routers, no need login ////
	///////////////////////////////////////

	publicRouter := b.R.Group("/")

	///////////////////////////////////////
	//// Admin routers, need login     ////
	///////////////////////////////////////

	adminRouter := b.R.Group("/admin")
	adminRouter.Use(middleware.AuthAdmin())

	for _, mgr := range managers {
		mgr.RegisterPublic(publicRouter)
		mgr.RegisterAdmin(adminRouter)
	}
}
