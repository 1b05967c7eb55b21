package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/projeto-charter/charter-backend/config"
	"github.com/projeto-charter/charter-backend/internal/bootstrap"
	"github.com/projeto-charter/charter-backend/internal/logging"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

func main() {
	root := &cobra.Command{
		Use:           "charterctl",
		Short:         "Manage project charters from the command line",
		Long:          "charterctl reads and creates project charters using the same store and validation as the API.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var asJSON bool
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "Print records as JSON")

	root.AddCommand(
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the charter table",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withServices(cmd.Context(), true, func(s *bootstrap.Services) error {
					fmt.Fprintln(cmd.OutOrStdout(), "migration complete")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List charters, most recent first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withServices(cmd.Context(), false, func(s *bootstrap.Services) error {
					return runList(cmd.Context(), s.Charters, cmd.OutOrStdout(), asJSON)
				})
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show one charter",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withServices(cmd.Context(), false, func(s *bootstrap.Services) error {
					return runShow(cmd.Context(), s.Charters, cmd.OutOrStdout(), args[0], asJSON)
				})
			},
		},
	)

	var file string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a charter from a JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(file, cmd.InOrStdin())
			if err != nil {
				return codeError(3, "reading input: %s", err)
			}
			return withServices(cmd.Context(), false, func(s *bootstrap.Services) error {
				return runCreate(cmd.Context(), s.Charters, cmd.OutOrStdout(), body, asJSON)
			})
		},
	}
	createCmd.Flags().StringVarP(&file, "file", "f", "-", "JSON file to read, - for stdin")
	root.AddCommand(createCmd)

	if err := root.ExecuteContext(context.Background()); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// withServices loads the config, opens the store and runs fn. migrate forces
// the schema migration regardless of DB_AUTO_MIGRATE.
func withServices(ctx context.Context, migrate bool, fn func(*bootstrap.Services) error) error {
	cfg, err := config.Load()
	if err != nil {
		return codeError(3, "config: %s", err)
	}
	logging.SetLevel(cfg.App.LogLevel)
	if migrate {
		cfg.Database.AutoMigrate = true
	}

	svcs, err := bootstrap.NewServices(ctx, cfg)
	if err != nil {
		return codeError(4, "startup: %s", err)
	}
	defer svcs.Close()

	return fn(svcs)
}
