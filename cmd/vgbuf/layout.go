package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/vgbuf/config"
	"github.com/gogpu/vgbuf/layout"
)

func newLayoutCmd(g *globalFlags) *cobra.Command {
	var align int
	cmd := &cobra.Command{
		Use:   "layout <width,height,FORMAT>",
		Short: "Print the computed layout of a buffer",
		Long: `Computes stride, padded height, allocation size and sub-plane offsets
for a buffer without allocating it.

Example:
  vgbuf layout 480,480,VG_LITE_BGRA8888
  vgbuf layout 320,241,VG_LITE_NV12 --align 4096`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := config.ParseBuffer(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("align") {
				align = g.settings.AddressAlignment
			}
			l, err := layout.Compute(spec.Width, spec.Height, spec.Format, align)
			if err != nil {
				return err
			}
			printLayout(cmd, l, align)
			return nil
		},
	}
	cmd.Flags().IntVar(&align, "align", layout.DefaultAddressAlignment, "Base address alignment in bytes")
	return cmd
}

func printLayout(cmd *cobra.Command, l layout.Layout, align int) {
	out := cmd.OutOrStdout()
	headerColor.Fprintf(out, "%s %dx%d\n", l.Format, l.Width, l.RequestedHeight)

	p := l.Format.Params()
	printf(out, "  params     mul=%d div=%d align=%d\n", p.Multiplier, p.Divisor, p.Alignment)
	printf(out, "  row bytes  %d\n", l.RowBytes)
	printf(out, "  stride     %d\n", l.Stride)
	printf(out, "  height     %d", l.Height)
	if l.Height != l.RequestedHeight {
		dimColor.Fprintf(out, " (rounded from %d)", l.RequestedHeight)
	}
	printf(out, "\n  size       %s (address alignment %d)\n", bytesString(l.Size), align)
	if l.Tiled {
		printf(out, "  tiled      yes\n")
	}
	if l.UVSwizzle {
		printf(out, "  uv swizzle yes\n")
	}
	if l.Planes != (layout.Planes{}) {
		luma, uv, v, alpha := l.PlaneSize()
		printf(out, "  planes     luma %s", bytesString(luma))
		if l.Planes.V != 0 {
			printf(out, ", v@%d %s", l.Planes.V, bytesString(v))
		}
		printf(out, ", uv@%d %s", l.Planes.UV, bytesString(uv))
		if l.Planes.Alpha != 0 {
			printf(out, ", alpha@%d %s", l.Planes.Alpha, bytesString(alpha))
		}
		printf(out, "\n")
	}
}
