package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/garrettladley/lumi/internal/client/github"
	"github.com/garrettladley/lumi/internal/version"
)

const (
	repoOwner = "garrettladley"
	repoName  = "lumi"
)

func upgradeCmd() *cobra.Command {
	var checkOnly bool

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Check for a newer lumi and install it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			current := version.Get()

			latest, err := github.NewClient().LatestRelease(ctx, repoOwner, repoName)
			if errors.Is(err, github.ErrNoRelease) {
				fmt.Fprintln(out, "no lumi release has been published yet")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to check for updates: %w", err)
			}

			if !version.IsNewer(current, latest.TagName) {
				fmt.Fprintf(out, "lumi is up to date (%s)\n", current)
				return nil
			}

			published := ""
			if !latest.PublishedAt.IsZero() {
				published = ", released " + humanize.Time(latest.PublishedAt)
			}
			if checkOnly {
				fmt.Fprintf(out, "lumi %s is available%s: %s\n", latest.TagName, published, latest.HTMLURL)
				return nil
			}

			fmt.Fprintf(out, "Updating lumi %s → %s%s\n", current, latest.TagName, published)
			if version.IsHomebrew() {
				return install(ctx, "brew upgrade failed", "brew", "upgrade", repoName)
			}
			return install(ctx, "upgrade failed", "go", "install", "github.com/"+repoOwner+"/"+repoName+"/cmd/lumi@latest")
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update is available")
	return cmd
}

func install(ctx context.Context, failure string, name string, args ...string) error {
	c := exec.CommandContext(ctx, name, args...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s: %w", failure, err)
	}
	fmt.Println("Successfully updated!")
	return nil
}
