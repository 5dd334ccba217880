package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/slidefx/internal/ipc"
	"github.com/spf13/cobra"
)

func NewPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Resume preview playback",
		Run: func(cmd *cobra.Command, args []string) {
			if err := ipc.SendPlay(); err != nil {
				log.Fatalf("Failed to send 'play' command: %v", err)
			}
			log.Info("Play command sent")
		},
	}
}
