package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/slidefx/internal/cli/cmd/utils"
	"github.com/matjam/slidefx/internal/ipc"
	"github.com/spf13/cobra"
)

func NewLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load [imageA] [imageB]",
		Short: "Load a new image pair into the daemon",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			images := []string{
				utils.CanonicalPath(args[0]),
				utils.CanonicalPath(args[1]),
			}
			if err := ipc.SendLoad(images); err != nil {
				log.Fatalf("Failed to send 'load' command: %v", err)
			}
			log.Info("Load command sent")
		},
	}
}
