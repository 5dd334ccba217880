package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/slidefx/internal/ipc"
	"github.com/spf13/cobra"
)

func NewSetCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "set",
		Short: "Change the daemon's transition kind or pin its progress",
		Long: `Changes the running preview. --kind switches the transition and
restarts the sweep; --progress pauses playback and pins the preview
at that exact progress value.`,
		Run: func(c *cobra.Command, args []string) {
			kind, _ := c.Flags().GetString("kind")
			progress, _ := c.Flags().GetFloat64("progress")

			if kind == "" && !c.Flags().Changed("progress") {
				log.Fatal("Nothing to set; pass --kind and/or --progress")
			}

			err := ipc.SendSet(ipc.Command{
				Kind:     kind,
				Progress: progress,
			})
			if err != nil {
				log.Fatalf("Failed to send 'set' command: %v", err)
			}
			log.Info("Set command sent")
		},
	}
	c.Flags().StringP("kind", "k", "", "Transition kind (name or number)")
	c.Flags().Float64P("progress", "p", 0, "Pin preview progress in [0,1]")
	return c
}
