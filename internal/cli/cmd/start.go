package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	daemon "github.com/sevlyar/go-daemon"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matjam/slidefx/internal/cli/cmd/utils"
	"github.com/matjam/slidefx/internal/engine"
	"github.com/matjam/slidefx/internal/ipc"
	"github.com/matjam/slidefx/internal/preview"
)

func NewStartCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "start [imageA] [imageB]",
		Short: "Start the live preview daemon",
		Long: `Starts the preview player: renders the configured transition between
the two images at the configured framerate and serves the control
socket. Use --background to daemonize.`,
		Args: cobra.ExactArgs(2),
		Run: func(c *cobra.Command, args []string) {
			background, _ := c.Flags().GetBool("background")
			if background && os.Getenv("BACKGROUND_PROCESS") != "1" {
				daemonize(args)
				return
			}
			StartPlayer(args[0], args[1])
		},
	}
	c.Flags().BoolP("background", "b", false, "Run as a daemon")
	return c
}

// daemonize forks the child that runs the player loop; the parent just
// reports the pid and exits.
func daemonize(args []string) {
	home := os.Getenv("HOME")
	runDir := filepath.Join(home, ".local", "share", "slidefx")
	if err := os.MkdirAll(runDir, 0755); err != nil {
		log.Fatalf("Error creating run directory: %v", err)
	}

	ctx := &daemon.Context{
		PidFileName: filepath.Join(runDir, "slidefx.pid"),
		PidFilePerm: 0644,
		LogFileName: filepath.Join(runDir, "slidefx.out"),
		LogFilePerm: 0640,
		Env:         append(os.Environ(), "BACKGROUND_PROCESS=1"),
	}

	child, err := ctx.Reborn()
	if err != nil {
		log.Fatalf("Unable to daemonize: %v", err)
	}
	if child != nil {
		log.Infof("slidefx started in the background, PID %d", child.Pid)
		return
	}
	defer ctx.Release()

	StartPlayer(args[0], args[1])
}

// StartPlayer runs the preview loop in the foreground of the current
// process.
func StartPlayer(pathA, pathB string) {
	log.Infof("StartPlayer() started in PID: %d", os.Getpid())

	if os.Getenv("BACKGROUND_PROCESS") == "1" {
		setupRotatingLogger()
	}

	if _, err := ipc.SendStatus(); err == nil {
		log.Infof("slidefx is already running, exiting")
		os.Exit(0)
	}

	kind, err := engine.ParseKind(viper.GetString("transition"))
	if err != nil {
		log.Fatalf("Invalid transition in config: %v", err)
	}

	presenter, err := preview.NewFilePresenter(utils.CanonicalPath(viper.GetString("preview_output")))
	if err != nil {
		log.Fatalf("Failed to create presenter: %v", err)
	}

	player := preview.NewPlayer(engine.New(), presenter, preview.Options{
		Kind:      kind,
		Duration:  time.Duration(viper.GetFloat64("duration") * float64(time.Second)),
		Easing:    preview.EasingMode(viper.GetString("easing")),
		Framerate: viper.GetInt("framerate_limit"),
		PingPong:  viper.GetBool("pingpong"),
	})

	if err := player.LoadImages(utils.CanonicalPath(pathA), utils.CanonicalPath(pathB)); err != nil {
		log.Fatalf("Failed to load images: %v", err)
	}

	go func() {
		log.Infof("Starting socket server")
		ipc.Start(player)
	}()

	player.Run()

	os.Remove(ipc.SocketPath())
	log.Infof("slidefx exited")
}

func setupRotatingLogger() {
	home := os.Getenv("HOME")
	logDir := filepath.Join(home, ".local", "share", "slidefx")
	logPath := filepath.Join(logDir, "slidefx.log")

	writer, err := rotatelogs.New(
		logPath+".%Y%m%d%H%M",
		rotatelogs.WithLinkName(logPath),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationSize(10*1024*1024),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		log.Fatalf("failed to configure log rotation: %v", err)
	}

	log.SetOutput(writer)
	log.SetLevel(log.InfoLevel)
}
