package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gogpu/vgbuf"
	"github.com/gogpu/vgbuf/config"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	verbose  bool
	quiet    bool
	noColor  bool
	logFile  string
	envFiles []string

	settings config.Settings
	closer   io.Closer
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "vgbuf",
		Short: "Compute VG-Lite buffer layouts and exercise the driver",
		Long: `vgbuf sizes pixel buffers for the VG-Lite vector accelerator and runs
one driver operation against freshly allocated target and source buffers,
saving the target as an image.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return g.teardown()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVarP(&g.quiet, "quiet", "q", false, "Only log warnings and errors")
	pf.BoolVar(&g.noColor, "no-color", false, "Disable colored output")
	pf.StringVar(&g.logFile, "log-file", "", "Write logs to a rotating file instead of stderr")
	pf.StringSliceVar(&g.envFiles, "env-file", nil, "Load settings from .env files")

	rootCmd.AddCommand(
		newRunCmd(g),
		newBatchCmd(g),
		newLayoutCmd(g),
		newFormatsCmd(g),
	)
	return rootCmd
}

func (g *globalFlags) setup(stderr io.Writer) error {
	if g.noColor {
		color.NoColor = true
	}

	s, err := config.LoadSettings(g.envFiles...)
	if err != nil {
		return err
	}
	g.settings = s

	level := s.LogLevel
	switch {
	case g.verbose:
		level = slog.LevelDebug
	case g.quiet:
		level = slog.LevelWarn
	}

	var w io.Writer = stderr
	if g.logFile != "" {
		lj := &lumberjack.Logger{
			Filename:   g.logFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
		g.closer = lj
		w = lj
	}
	vgbuf.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}

func (g *globalFlags) teardown() error {
	vgbuf.SetLogger(nil)
	if g.closer == nil {
		return nil
	}
	err := g.closer.Close()
	g.closer = nil
	return err
}

// newAllocator builds an allocator from the loaded settings.
func (g *globalFlags) newAllocator() (*vgbuf.Allocator, error) {
	opts, err := g.settings.Options()
	if err != nil {
		return nil, err
	}
	return vgbuf.NewAllocator(opts...)
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

