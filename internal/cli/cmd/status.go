package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/slidefx/internal/cli/cmd/utils"
	"github.com/matjam/slidefx/internal/ipc"
	"github.com/spf13/cobra"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get slidefx daemon status",
		Long:  `Returns the current status of the slidefx preview daemon.`,
		Run: func(cmd *cobra.Command, args []string) {
			response, err := ipc.SendStatus()
			if err != nil {
				log.Errorf("Error fetching status: %v", err)
				return
			}
			utils.PrintJSONColored(response)
		},
	}
}
