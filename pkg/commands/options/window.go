package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/timeutil"
)

// WindowOptions select a trailing time window.
type WindowOptions struct {
	Window string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions, def string) {
	cmd.Flags().StringVar(&o.Window, "window", def,
		"Trailing window such as 3d, 1w or 1w2d6h.")
}

// GetWindow parses --window; empty means no limit.
func (o *WindowOptions) GetWindow() (time.Duration, error) {
	if o.Window == "" {
		return 0, nil
	}
	return timeutil.ParseWindow(o.Window, 0)
}
