package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/juno-cash/junoup/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long:  `Read and write Junoup configuration stored at ~/.junoup/config.yaml.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if !isKnownKey(key) {
			return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(config.KnownKeys, ", "))
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		value := config.Get(args[0])
		fmt.Println(value)
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the config file against its schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.FilePath()
		result, err := config.ValidateFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Printf("No config file at %s; defaults apply.\n", path)
				return nil
			}
			return err
		}

		if result.Valid {
			fmt.Printf("%s is valid.\n", path)
			return nil
		}

		printConfigIssues(os.Stderr, path, result.Issues)
		return fmt.Errorf("config validation failed")
	},
}

// ensureValidConfig rejects a malformed or schema-violating config file
// before the check workflow consumes it. A missing file is fine; defaults
// apply.
func ensureValidConfig(stderr io.Writer) error {
	path := config.FilePath()
	result, err := config.ValidateFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if result.Valid {
		return nil
	}

	printConfigIssues(stderr, path, result.Issues)
	return fmt.Errorf("invalid config file at %s", path)
}

func printConfigIssues(w io.Writer, path string, issues []config.ValidationIssue) {
	fmt.Fprintf(w, "%s has %d issue(s):\n", path, len(issues))
	for _, issue := range issues {
		loc := issue.Path
		if loc == "" {
			loc = "(root)"
		}
		fmt.Fprintf(w, "  %s: %s\n", loc, issue.Message)
	}
}

func isKnownKey(key string) bool {
	for _, k := range config.KnownKeys {
		if k == key {
			return true
		}
	}
	return false
}
