package main

import (
	"text/tabwriter"

	"github.com/gogpu/gputypes"
	"github.com/spf13/cobra"

	"github.com/gogpu/vgbuf/format"
)

func newFormatsCmd(_ *globalFlags) *cobra.Command {
	var family string
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the pixel formats and their layout parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			printf(tw, "NAME\tFAMILY\tMUL\tDIV\tALIGN\tWEBGPU\n")
			for _, f := range format.All() {
				if family != "" && f.Family().String() != family {
					continue
				}
				p := f.Params()
				tex := "-"
				if t := f.TextureFormat(); t != gputypes.TextureFormatUndefined {
					tex = t.String()
				}
				printf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n", f, f.Family(), p.Multiplier, p.Divisor, p.Alignment, tex)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "Only list one family (packed, alpha, indexed, yuv, compressed, openvg)")
	return cmd
}
