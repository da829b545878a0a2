package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vergo-dev/vergo/internal/domain/changelog"
	"github.com/vergo-dev/vergo/internal/infrastructure/hvcs"
)

var changelogOutput string

func init() {
	changelogCmd.Flags().StringVarP(&changelogOutput, "output", "o", "", "write the changelog to a file instead of stdout")
}

// changelogCmd renders the full changelog from the analyzed history.
var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Render the changelog from the commit history",
	Long: `Render the full changelog for the current branch, newest release
first, with an Unreleased section when unreleased commits exist.

Commit hashes are linked to the hosting platform when the origin
remote points at a recognized host.`,
	RunE: runChangelog,
}

func runChangelog(cmd *cobra.Command, args []string) error {
	svc, repo, err := openService()
	if err != nil {
		return err
	}

	hist, err := svc.History(cmd.Context())
	if err != nil {
		return err
	}

	var link changelog.LinkFunc
	var compare changelog.CompareFunc
	if cfg.Changelog.LinkCommits {
		link, compare = remoteLinks(cmd, repo)
	}

	doc := changelog.FromHistory(cfg.Changelog.Title, hist, svc.Parser(), link, compare)
	rendered := doc.Render()

	if changelogOutput == "" || dryRun {
		if dryRun && changelogOutput != "" {
			printSubtle(fmt.Sprintf("dry run: would write %s", changelogOutput))
		}
		fmt.Print(rendered)
		return nil
	}

	if err := os.WriteFile(changelogOutput, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to write changelog: %w", err)
	}
	printSuccess(fmt.Sprintf("Changelog written to %s", changelogOutput))
	return nil
}

type remoteURLer interface {
	RemoteURL(ctx context.Context, name string) (string, error)
}

// remoteLinks derives commit and comparison link functions from the
// default remote. Repositories without a recognized remote render
// without links.
func remoteLinks(cmd *cobra.Command, repo remoteURLer) (changelog.LinkFunc, changelog.CompareFunc) {
	raw, err := repo.RemoteURL(cmd.Context(), cfg.Git.DefaultRemote)
	if err != nil {
		logger.Debug("no remote for commit links", "remote", cfg.Git.DefaultRemote, "err", err)
		return nil, nil
	}

	remote, err := hvcs.ParseRemoteURL(raw)
	if err != nil {
		logger.Debug("unrecognized remote URL, rendering without links", "url", raw)
		return nil, nil
	}
	return remote.CommitURL, remote.CompareURL
}
