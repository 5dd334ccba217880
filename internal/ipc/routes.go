package ipc

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, player PlayerInterface) {
	e.GET("/status", statusHandler(player))
	e.POST("/stop", stopHandler(player))
	e.POST("/load", loadHandler(player))
	e.POST("/set", setHandler(player))
	e.POST("/play", playHandler(player))
	e.POST("/pause", pauseHandler(player))
}
