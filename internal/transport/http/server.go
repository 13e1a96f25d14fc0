package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/roomhub-server/internal/config"
	"github.com/vovakirdan/roomhub-server/internal/core"
)

// NewServer builds the HTTP server: health, room listing and the ws bridge.
func NewServer(reg *core.Registry, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.GET("/health", healthHandler)

	rooms := NewRoomHandlers(reg, logger)
	api := router.Group("/api")
	api.GET("/rooms", rooms.ListRooms)
	api.GET("/rooms/:name", rooms.GetRoom)

	router.GET("/ws", gin.WrapH(NewWSHandler(reg, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
