// Package main provides a small showcase for the bubblepop alert overlay:
// a few keys present alerts with different transitions, levels and
// dismissal rules above a plain inner model, exercising the queue along
// the way.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/calverley/bubblepop"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		transition string
		edge       string
		interval   time.Duration
		debugLog   string
	)

	cmd := &cobra.Command{
		Use:          "bubblepop-demo",
		Short:        "Showcase transient alert overlays above a Bubble Tea model",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := parseTransition(transition)
			if err != nil {
				return err
			}
			ed, err := parseEdge(edge)
			if err != nil {
				return err
			}

			var hostOpts []bubblepop.HostOption
			if debugLog != "" {
				f, err := os.OpenFile(debugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open debug log: %w", err)
				}
				defer f.Close()
				hostOpts = append(hostOpts, bubblepop.WithLogger(slog.New(
					slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}),
				)))
			}

			host := bubblepop.NewHost(hostOpts...)
			program := tea.NewProgram(
				newDemo(host, tr, ed, interval),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&transition, "transition", "slide", "transition for the notice alert: slide or fade")
	cmd.Flags().StringVar(&edge, "edge", "bottom", "edge a sliding alert travels from: top, bottom, left or right")
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "auto-dismiss interval for the notice alert")
	cmd.Flags().StringVar(&debugLog, "debug-log", "", "write overlay lifecycle logs to this file")

	return cmd
}

func parseTransition(s string) (bubblepop.Transition, error) {
	switch s {
	case "slide":
		return bubblepop.TransitionSlide, nil
	case "fade":
		return bubblepop.TransitionFade, nil
	default:
		return 0, fmt.Errorf("unknown transition %q (want slide or fade)", s)
	}
}

func parseEdge(s string) (bubblepop.Edge, error) {
	switch s {
	case "top":
		return bubblepop.EdgeTop, nil
	case "bottom":
		return bubblepop.EdgeBottom, nil
	case "left":
		return bubblepop.EdgeLeft, nil
	case "right":
		return bubblepop.EdgeRight, nil
	default:
		return 0, fmt.Errorf("unknown edge %q (want top, bottom, left or right)", s)
	}
}
