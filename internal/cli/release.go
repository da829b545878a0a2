package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vergo-dev/vergo/internal/domain/sourcecontrol"
	verrors "github.com/vergo-dev/vergo/internal/errors"
)

// releaseCmd resolves the next version and tags it.
var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Tag the next version in the repository",
	Long: `Resolve the next version for the current branch and create the
matching tag at HEAD.

Nothing happens when the pending commits warrant no release. Use
--dry-run to see what would be tagged without modifying the
repository.`,
	RunE: runRelease,
}

// releaseOutput is the JSON shape of the release command.
type releaseOutput struct {
	Branch    string `json:"branch"`
	Channel   string `json:"channel"`
	Current   string `json:"current,omitempty"`
	Next      string `json:"next,omitempty"`
	TagName   string `json:"tag_name,omitempty"`
	Warranted bool   `json:"release_warranted"`
	Tagged    bool   `json:"tagged"`
	DryRun    bool   `json:"dry_run,omitempty"`
}

func runRelease(cmd *cobra.Command, args []string) error {
	const op = "cli.runRelease"

	svc, repo, err := openService()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	res, err := svc.Resolve(ctx)
	if err != nil {
		return err
	}

	if !res.Warranted {
		if cfg.Output.JSON {
			return writeReleaseJSON(releaseOutput{
				Branch:    res.Branch,
				Channel:   res.Channel.Name(),
				Warranted: false,
			})
		}
		printWarning("No release warranted by the pending commits")
		return nil
	}

	tags, err := repo.ListTags(ctx)
	if err != nil {
		return err
	}
	if existing := tags.ByName(res.TagName); existing != nil {
		return verrors.Wrap(sourcecontrol.ErrTagAlreadyExists, verrors.KindValidation, op,
			fmt.Sprintf("tag %s already exists at %s", res.TagName, existing.Hash().Short()))
	}
	if res.Current != nil && !res.Next.GreaterThan(*res.Current) {
		return verrors.Validation(op, fmt.Sprintf("resolved version %s does not advance past %s", res.Next, res.Current))
	}

	out := releaseOutput{
		Branch:    res.Branch,
		Channel:   res.Channel.Name(),
		Next:      res.Next.String(),
		TagName:   res.TagName,
		Warranted: true,
		DryRun:    dryRun,
	}
	if res.Current != nil {
		out.Current = res.Current.String()
	}

	if dryRun {
		if cfg.Output.JSON {
			return writeReleaseJSON(out)
		}
		printInfo(fmt.Sprintf("Branch:  %s (channel %s)", res.Branch, res.Channel.Name()))
		printSubtle(fmt.Sprintf("dry run: would tag %s at HEAD", res.TagName))
		return nil
	}

	message := ""
	if cfg.Git.Annotate {
		message = fmt.Sprintf("Release %s", res.TagName)
	}
	if _, err := repo.CreateTag(ctx, res.TagName, "", message); err != nil {
		return err
	}
	logger.Debug("created release tag", "tag", res.TagName, "annotated", cfg.Git.Annotate)
	out.Tagged = true

	if cfg.Output.JSON {
		return writeReleaseJSON(out)
	}
	printSuccess(fmt.Sprintf("Released %s (tag %s)", res.Next, res.TagName))
	return nil
}

func writeReleaseJSON(out releaseOutput) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
