package cmd

import (
	"fmt"

	"github.com/matjam/slidefx/internal/engine"
	"github.com/spf13/cobra"
)

func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available transition kinds",
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range engine.Kinds() {
				fmt.Printf("%2d  %s\n", int(k), k)
			}
		},
	}
}
