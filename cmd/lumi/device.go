package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/garrettladley/lumi/internal/client/lumi"
	"github.com/garrettladley/lumi/internal/color"
	"github.com/garrettladley/lumi/internal/tui/components/connection"
	"github.com/garrettladley/lumi/internal/xslog"
)

// deviceCmd wires a one-shot command to a device client. Logs go to stderr.
func deviceCmd(c *cobra.Command, run func(cmd *cobra.Command, client *lumi.Client, args []string) error) *cobra.Command {
	c.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig()
		if err != nil {
			return err
		}
		logger := xslog.NewLogger(os.Stderr, slog.LevelWarn, xslog.FormatText)
		return run(cmd, newClient(cfg, logger), args)
	}
	return c
}

func statusCmd() *cobra.Command {
	return deviceCmd(&cobra.Command{
		Use:   "status",
		Short: "Show device status",
		Args:  cobra.NoArgs,
	}, func(cmd *cobra.Command, client *lumi.Client, _ []string) error {
		status, err := client.Status.Get(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, up %s\n", status.Device, status.Status, connection.Uptime(status.Uptime()))
		return nil
	})
}

func patternsCmd() *cobra.Command {
	return deviceCmd(&cobra.Command{
		Use:   "patterns",
		Short: "List the device's patterns",
		Args:  cobra.NoArgs,
	}, func(cmd *cobra.Command, client *lumi.Client, _ []string) error {
		patterns, err := client.Patterns.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list patterns: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(patterns) == 0 {
			fmt.Fprintln(out, "no patterns")
			return nil
		}
		for _, p := range patterns {
			fmt.Fprintf(out, "%3d  %s\n", p.ID, p.Name)
		}
		return nil
	})
}

func runCmd() *cobra.Command {
	return deviceCmd(&cobra.Command{
		Use:   "run <id>",
		Short: "Run a pattern",
		Args:  cobra.ExactArgs(1),
	}, func(cmd *cobra.Command, client *lumi.Client, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid pattern id %q", args[0])
		}
		result, err := client.Patterns.Run(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to run pattern: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "running %d: %s\n", result.Pattern, result.Name)
		return nil
	})
}

func stopCmd() *cobra.Command {
	return deviceCmd(&cobra.Command{
		Use:   "stop",
		Short: "Stop the running pattern and blank every face",
		Args:  cobra.NoArgs,
	}, func(cmd *cobra.Command, client *lumi.Client, _ []string) error {
		if err := client.Patterns.Stop(cmd.Context()); err != nil {
			return fmt.Errorf("failed to stop pattern: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "stopped")
		return nil
	})
}

func faceCmd() *cobra.Command {
	return deviceCmd(&cobra.Command{
		Use:   "face <1-8> <#rrggbb>",
		Short: "Set one face; #000000 turns it off",
		Args:  cobra.ExactArgs(2),
	}, func(cmd *cobra.Command, client *lumi.Client, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > lumi.Faces {
			return fmt.Errorf("face must be 1-%d, got %q", lumi.Faces, args[0])
		}
		rgb, err := color.ParseHex(args[1])
		if err != nil {
			return err
		}
		result, err := client.Faces.Set(cmd.Context(), n-1, rgb)
		if err != nil {
			return fmt.Errorf("failed to set face: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "face %d is %s\n", result.Face+1, result.Color.RGB().Hex())
		return nil
	})
}

func resetCmd() *cobra.Command {
	return deviceCmd(&cobra.Command{
		Use:   "reset",
		Short: "Blank every face",
		Args:  cobra.NoArgs,
	}, func(cmd *cobra.Command, client *lumi.Client, _ []string) error {
		if err := client.Faces.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("failed to reset: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "reset")
		return nil
	})
}

func uploadCmd() *cobra.Command {
	return deviceCmd(&cobra.Command{
		Use:   "upload <file|->",
		Short: "Upload a JSON pattern document",
		Args:  cobra.ExactArgs(1),
	}, func(cmd *cobra.Command, client *lumi.Client, args []string) error {
		raw, err := readDocument(cmd, args[0])
		if err != nil {
			return err
		}
		result, err := client.Patterns.Upload(cmd.Context(), raw)
		if err != nil {
			return fmt.Errorf("failed to upload pattern: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s\n", result.Pattern)
		return nil
	})
}

func readDocument(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern: %w", err)
	}
	return raw, nil
}
