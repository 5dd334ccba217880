package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/slidefx/internal/ipc"
	"github.com/spf13/cobra"
)

func NewPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause preview playback",
		Run: func(cmd *cobra.Command, args []string) {
			if err := ipc.SendPause(); err != nil {
				log.Fatalf("Failed to send 'pause' command: %v", err)
			}
			log.Info("Pause command sent")
		},
	}
}
