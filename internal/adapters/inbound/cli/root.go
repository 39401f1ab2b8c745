package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	settingsLoader "github.com/nrminor/dotlint/internal/adapters/outbound/config"
	"github.com/nrminor/dotlint/internal/adapters/outbound/dotter"
	"github.com/nrminor/dotlint/internal/adapters/outbound/gitinfo"
	"github.com/nrminor/dotlint/internal/adapters/outbound/gitrepo"
	"github.com/nrminor/dotlint/internal/adapters/outbound/tui"
	"github.com/nrminor/dotlint/internal/application"
	"github.com/nrminor/dotlint/internal/domain"
	"github.com/nrminor/dotlint/internal/domain/rules"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var (
		fixMode bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "validate-dotfiles",
		Short: "Validate dotfiles repository structure and configuration",
		Long:  "Check a dotter-managed dotfiles repository for missing files, untracked or ignored sources, broken symlinks, and malformed TOML/JSON.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := repositoryRoot()
			if err != nil {
				return err
			}
			cfg := &domain.Config{Root: root, Verbose: verbose, FixMode: fixMode}
			return runValidation(cmd, cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVarP(&fixMode, "fix", "f", false, "Show fix suggestions")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// repositoryRoot resolves the repository under validation: DOTFILES_DIR
// when set, otherwise the working directory.
func repositoryRoot() (string, error) {
	if dir := os.Getenv("DOTFILES_DIR"); dir != "" {
		return filepath.Abs(dir)
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return dir, nil
}

func runValidation(cmd *cobra.Command, cfg *domain.Config) error {
	out := cmd.OutOrStdout()

	settings, err := settingsLoader.New().Load(cfg.Root)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	var log domain.Logger = domain.NopLogger{}
	if cfg.Verbose {
		log = tui.NewVerboseLogger(out)
	}

	inspector := gitrepo.New(cfg.Root)
	refs := dotter.NewLoader(settings.ConfigDocuments())

	// Fixed rule order; every rule sees the same read-only config.
	svc := application.NewValidateService(
		rules.NewConfigsExist(settings.RequiredConfigs),
		rules.NewFilesTracked(refs, inspector, log),
		rules.NewNoBrokenSymlinks(inspector),
		rules.NewTOMLSyntax(inspector),
		rules.NewJSONSyntax(inspector, settings.JSONExceptions),
	)

	fmt.Fprint(out, tui.RenderHeader())
	if cfg.Verbose {
		if hash, err := gitinfo.New().CommitHash(cfg.Root); err == nil {
			fmt.Fprint(out, tui.RenderCommit(hash))
		}
	}

	results, err := svc.Run(cfg)
	if err != nil {
		return err
	}

	for _, result := range results {
		fmt.Fprint(out, tui.RenderResult(result))
	}

	sum := svc.Summarize(results)
	fmt.Fprint(out, tui.RenderSummary(sum, cfg.FixMode))

	if sum.ExitCode != 0 {
		return fmt.Errorf("%w: %d error(s)", domain.ErrIssuesFound, sum.Errors)
	}
	return nil
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
