package cli

import (
	"github.com/juno-cash/junoup/internal/branding"
	"github.com/juno-cash/junoup/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagRepo       string
	flagBinaryName string
)

func init() {
	rootCmd.Flags().StringVar(&flagRepo, "repo", "",
		"GitHub repository to check (default "+branding.GitHubRepo()+", env "+branding.EnvVar("REPO")+")")
	rootCmd.Flags().StringVar(&flagBinaryName, "binary-name", "",
		"Binary name to find in release archives (default "+branding.BinaryName()+", env "+branding.EnvVar("BINARY_NAME")+")")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [binary-path]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` compares the version of a locally installed Juno daemon with
the latest GitHub release, installing the daemon first when it is missing.

  junoup                              # check ./junocashd against juno-cash/junocash
  junoup /opt/juno/junocashd          # check a binary at a specific path
  junoup --repo juno-cash/testnet ./testnetd`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureValidConfig(cmd.ErrOrStderr()); err != nil {
			return err
		}
		config.Load()

		opts := checkOptions{
			repo:       config.Repo(),
			binaryName: config.BinaryName(),
			binaryPath: config.BinaryPath(),
			mirror:     config.Mirror(),
			stdout:     cmd.OutOrStdout(),
			stderr:     cmd.ErrOrStderr(),
		}
		if flagRepo != "" {
			opts.repo = flagRepo
		}
		if flagBinaryName != "" {
			opts.binaryName = flagBinaryName
		}
		if len(args) == 1 {
			opts.binaryPath = args[0]
		}

		return runCheck(cmd.Context(), opts)
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
