package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matjam/slidefx/internal/cli/cmd/utils"
	"github.com/matjam/slidefx/internal/engine"
	"github.com/matjam/slidefx/internal/export"
	"github.com/matjam/slidefx/internal/source"
)

func NewExportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "export [imageA] [imageB]",
		Short: "Export a transition as a PNG frame sequence",
		Long: `Renders the transition once per frame index, progress i/frames for
i in [0, frames], and writes zero-padded PNG files. Output is
deterministic: the same inputs always produce identical frames.`,
		Args: cobra.ExactArgs(2),
		Run: func(c *cobra.Command, args []string) {
			kindName, _ := c.Flags().GetString("kind")
			if kindName == "" {
				kindName = viper.GetString("transition")
			}
			kind, err := engine.ParseKind(kindName)
			if err != nil {
				log.Fatalf("Invalid transition: %v", err)
			}

			frames, _ := c.Flags().GetInt("frames")
			if frames == 0 {
				frames = viper.GetInt("frames")
			}
			outDir, _ := c.Flags().GetString("out")
			prefix, _ := c.Flags().GetString("prefix")
			if prefix == "" {
				prefix = viper.GetString("prefix")
			}

			a, err := source.Load(utils.CanonicalPath(args[0]))
			if err != nil {
				log.Fatalf("Failed to load first image: %v", err)
			}
			b, err := source.Load(utils.CanonicalPath(args[1]))
			if err != nil {
				log.Fatalf("Failed to load second image: %v", err)
			}

			err = export.Sequence(engine.New(), a, b, export.Options{
				Dir:    utils.CanonicalPath(outDir),
				Prefix: prefix,
				Frames: frames,
				Kind:   kind,
			})
			if err != nil {
				log.Fatalf("Export failed: %v", err)
			}
		},
	}

	c.Flags().StringP("kind", "k", "", "Transition kind (name or number, see 'slidefx list')")
	c.Flags().IntP("frames", "n", 0, "Frame count (writes frames+1 images)")
	c.Flags().StringP("out", "o", "frames", "Output directory")
	c.Flags().StringP("prefix", "p", "", "Frame filename prefix")
	return c
}
