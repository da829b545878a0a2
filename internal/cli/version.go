package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vergo-dev/vergo/internal/domain/sourcecontrol"
)

var printNext bool

func init() {
	versionCmd.Flags().BoolVar(&printNext, "print-next", false, "print only the bare next version")
}

// versionCmd resolves and reports the current and next version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Resolve the next version from the commit history",
	Long: `Resolve the next version for the current branch.

The command analyzes the commits since the last release under the
configured commit convention and reports the version the pending
changes warrant. No repository state is modified.`,
	RunE: runVersion,
}

// versionOutput is the JSON shape of the version command.
type versionOutput struct {
	Branch      string `json:"branch"`
	Channel     string `json:"channel"`
	Current     string `json:"current,omitempty"`
	DanglingTag string `json:"dangling_tag,omitempty"`
	Next        string `json:"next,omitempty"`
	TagName     string `json:"tag_name,omitempty"`
	Warranted   bool   `json:"release_warranted"`
}

// versionTagLister is the slice of the git adapter the version command
// needs for tag reporting.
type versionTagLister interface {
	LatestVersionTag(ctx context.Context, prefix string) (*sourcecontrol.Tag, error)
}

// unreachableVersionTag returns the name of the highest version tag in
// the repository when the branch history itself carries none. Such a tag
// is dangling for this branch and worth surfacing next to "no release".
func unreachableVersionTag(ctx context.Context, repo versionTagLister, prefix string) string {
	tag, err := repo.LatestVersionTag(ctx, prefix)
	if err != nil || tag == nil {
		return ""
	}
	return tag.Name()
}

func runVersion(cmd *cobra.Command, args []string) error {
	svc, repo, err := openService()
	if err != nil {
		return err
	}

	res, err := svc.Resolve(cmd.Context())
	if err != nil {
		return err
	}

	if printNext {
		if res.Warranted {
			fmt.Println(res.Next.String())
		}
		return nil
	}

	var dangling string
	if res.Current == nil {
		dangling = unreachableVersionTag(cmd.Context(), repo, svc.TagFormat().Prefix())
	}

	if cfg.Output.JSON {
		out := versionOutput{
			Branch:      res.Branch,
			Channel:     res.Channel.Name(),
			DanglingTag: dangling,
			Warranted:   res.Warranted,
		}
		if res.Current != nil {
			out.Current = res.Current.String()
		}
		if res.Warranted {
			out.Next = res.Next.String()
			out.TagName = res.TagName
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	printInfo(fmt.Sprintf("Branch:  %s (channel %s)", res.Branch, res.Channel.Name()))
	if res.Current != nil {
		printInfo(fmt.Sprintf("Current: %s", res.Current))
	} else {
		printSubtle("Current: none (no release yet)")
		if dangling != "" {
			printWarning(fmt.Sprintf("Tag %s exists but is unreachable from %s", dangling, res.Branch))
		}
	}

	if !res.Warranted {
		printWarning("No release warranted by the pending commits")
		return nil
	}

	printSuccess(fmt.Sprintf("Next:    %s (tag %s)", res.Next, res.TagName))
	return nil
}
