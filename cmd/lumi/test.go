package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/lumi/internal/client/lumi"
	"github.com/garrettladley/lumi/internal/color"
)

func testCmd() *cobra.Command {
	return deviceCmd(&cobra.Command{
		Use:   "test",
		Short: "Exercise every device endpoint",
		Long:  "Walks the device API once to verify the client works. Leaves every face off.",
		Args:  cobra.NoArgs,
	}, func(cmd *cobra.Command, client *lumi.Client, _ []string) error {
		var (
			ctx      = cmd.Context()
			out      = cmd.OutOrStdout()
			failures int
		)

		check := func(name string, err error, ok string) {
			fmt.Fprintf(out, "\n[%s]\n", name)
			if err != nil {
				fmt.Fprintf(out, "  ERROR: %v\n", err)
				failures++
				return
			}
			fmt.Fprintf(out, "  OK: %s\n", ok)
		}

		status, err := client.Status.Get(ctx)
		if err == nil {
			check("Status.Get", nil, fmt.Sprintf("%s up %ds", status.Device, status.UptimeSeconds))
		} else {
			check("Status.Get", err, "")
		}

		face, err := client.Faces.Set(ctx, 0, color.RGB{R: 255})
		if err == nil {
			check("Faces.Set", nil, fmt.Sprintf("face=%d color=%s", face.Face, face.Color.RGB().Hex()))
		} else {
			check("Faces.Set", err, "")
		}

		check("Faces.SetAll", client.Faces.SetAll(ctx, color.RGB{B: 255}), "8 faces")

		patterns, err := client.Patterns.List(ctx)
		check("Patterns.List", err, fmt.Sprintf("%d patterns", len(patterns)))

		if len(patterns) > 0 {
			run, err := client.Patterns.Run(ctx, patterns[0].ID)
			if err == nil {
				check("Patterns.Run", nil, fmt.Sprintf("id=%d name=%s", run.Pattern, run.Name))
			} else {
				check("Patterns.Run", err, "")
			}
			check("Patterns.Stop", client.Patterns.Stop(ctx), "stopped")
		}

		check("Faces.Reset", client.Faces.Reset(ctx), "all off")

		fmt.Fprintln(out, "\n"+"==========")
		if failures == 0 {
			fmt.Fprintln(out, "All endpoints passed!")
		} else {
			fmt.Fprintf(out, "%d endpoint(s) failed\n", failures)
		}
		return nil
	})
}
