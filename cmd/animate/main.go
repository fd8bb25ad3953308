package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/midbel/animcharts/dash"
)

type options struct {
	settings dash.Settings
	logger   *slog.Logger
	fps      int
}

func main() {
	var opts options
	root := &cobra.Command{
		Use:           "animate",
		Short:         "Render animated line charts, bar charts and counters",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.Context())
		},
	}
	root.PersistentFlags().IntVar(&opts.fps, "fps", 0, "frames per second (default from ANIM_FPS)")

	root.AddCommand(renderCommand(&opts))
	root.AddCommand(framesCommand(&opts))
	root.AddCommand(previewCommand(&opts))

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (o *options) setup(ctx context.Context) error {
	set, err := dash.Load(ctx)
	if err != nil {
		return err
	}
	if o.fps > 0 {
		set.FPS = o.fps
	}
	o.settings = set
	o.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: set.Level(),
	}))
	return nil
}
