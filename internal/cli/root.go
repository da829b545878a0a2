// Package cli provides the command-line interface for vergo.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/vergo-dev/vergo/internal/application/versioning"
	"github.com/vergo-dev/vergo/internal/config"
	gitinfra "github.com/vergo-dev/vergo/internal/infrastructure/git"
)

var (
	// Global flags
	cfgFile    string
	repoPath   string
	verbose    bool
	dryRun     bool
	outputJSON bool
	noColor    bool
	logLevel   string

	// Global config
	cfg *config.Config

	// Logger
	logger *log.Logger

	// Styles
	styles = struct {
		Title   lipgloss.Style
		Success lipgloss.Style
		Error   lipgloss.Style
		Warning lipgloss.Style
		Info    lipgloss.Style
		Subtle  lipgloss.Style
	}{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Subtle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
)

// SetVersionInfo sets the binary version reported by --version.
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "vergo",
	Short: "Commit-history driven versioning and changelogs",
	Long: `vergo resolves the next semantic version of a repository from its
commit history and renders changelogs from the same analysis.

It walks the history backward from the current branch, partitions it at
version tag boundaries, classifies commits under a configurable
convention (angular, emoji, scipy, tag), and resolves the next version
for the release channel matching the branch.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return initConfig()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a context for graceful shutdown.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: vergo.yaml)")
	rootCmd.PersistentFlags().StringVarP(&repoPath, "repo", "C", ".", "path to the git repository")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "simulate actions without making changes")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output results as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(changelogCmd)
	rootCmd.AddCommand(releaseCmd)
}

// initConfig loads the configuration and applies global flags.
func initConfig() error {
	loader := config.NewLoader()
	if cfgFile != "" {
		loader.WithConfigPath(cfgFile)
	} else if repoPath != "." {
		loader.WithSearchPaths(repoPath)
	}

	var err error
	cfg, err = loader.Load()
	if err != nil {
		return err
	}

	applyGlobalFlags()
	configureLogger()
	return nil
}

// applyGlobalFlags applies global CLI flags over the file configuration.
func applyGlobalFlags() {
	if logLevel != "" {
		cfg.Output.LogLevel = logLevel
	}
	if outputJSON {
		cfg.Output.JSON = true
	}
	if noColor {
		cfg.Output.Color = false
	}
	if !cfg.Output.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// configureLogger sets the logger level from configuration.
func configureLogger() {
	switch cfg.Output.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// openService opens the repository and wires the versioning service.
func openService() (*versioning.Service, *gitinfra.Repository, error) {
	opts := []gitinfra.Option{}
	if cfg.Git.TaggerName != "" || cfg.Git.TaggerEmail != "" {
		opts = append(opts, gitinfra.WithTagger(cfg.Git.TaggerName, cfg.Git.TaggerEmail))
	}

	repo, err := gitinfra.Open(repoPath, opts...)
	if err != nil {
		return nil, nil, err
	}

	svc, err := versioning.NewService(cfg, repo, logger)
	if err != nil {
		return nil, nil, err
	}
	return svc, repo, nil
}

// Helper functions for output

func printSuccess(msg string) {
	fmt.Println(styles.Success.Render("✓ " + msg))
}

func printWarning(msg string) {
	fmt.Println(styles.Warning.Render("⚠ " + msg))
}

func printInfo(msg string) {
	fmt.Println(styles.Info.Render("ℹ " + msg))
}

func printSubtle(msg string) {
	fmt.Println(styles.Subtle.Render(msg))
}
