package ipc

import (
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/matjam/slidefx"
	"github.com/matjam/slidefx/internal/engine"
	"github.com/spf13/viper"
)

// GET /status
func statusHandler(p PlayerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSONPretty(http.StatusOK, StatusResponse{
			Status:  "ok",
			Message: "slidefx is running",
			Version: strings.Trim(slidefx.Version, "\n\r "),
			PID:     os.Getpid(),
			Socket:  SocketPath(),
			Config:  viper.ConfigFileUsed(),
			Player:  p.Status(),
		}, "  ")
	}
}

// POST /stop
func stopHandler(p PlayerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p.EnqueueCommand(Command{Type: CommandStop})
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

// POST /load — body is a JSON array of exactly two image paths.
func loadHandler(p PlayerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		var images []string
		if err := c.Bind(&images); err != nil || len(images) != 2 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "expected a JSON array of two image paths"})
		}

		p.EnqueueCommand(Command{
			Type: CommandLoad,
			Args: images,
		})

		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

// POST /set — change the transition kind and/or pin progress.
func setHandler(p PlayerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		var cmd Command
		if err := c.Bind(&cmd); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid command body"})
		}
		if cmd.Kind != "" {
			if _, err := engine.ParseKind(cmd.Kind); err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
		}
		cmd.Type = CommandSet
		p.EnqueueCommand(cmd)
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

// POST /play
func playHandler(p PlayerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p.EnqueueCommand(Command{Type: CommandPlay})
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

// POST /pause
func pauseHandler(p PlayerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p.EnqueueCommand(Command{Type: CommandPause})
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
