package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// newRootCmd builds a fresh command tree bound to a. Cobra keeps parsed flag
// and argument state on each command, so every Run gets its own tree.
func (a *App) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "client",
		Short: "Inspect and update users of the remote user API",
		Long: `Inspect and update users of the remote user API.

Connection and storage settings come from the flags, environment variables
and JSON config file accepted before the command name.

Examples:
  client list
  client login 42
  client wallet-add 42 12.50
  client update 42 '{"email":"bob@example.com","wallet":20}'`,
		Args:          rootArgs,
		RunE:          func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every user",
			Args:  exactArgs(0),
			RunE:  a.runE(a.list),
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show one user",
			Args:  exactArgs(1),
			RunE:  a.runE(a.get),
		},
		&cobra.Command{
			Use:   "update <id> <json>",
			Short: "Replace a user record",
			Long: `Replace a user record with the given JSON object.

The object is sent as is, so it must carry every field the record should keep.`,
			Args: exactArgs(2),
			RunE: a.runE(a.update),
		},
		&cobra.Command{
			Use:   "connect <id> <true|false>",
			Short: "Set the isConnected flag",
			Args:  exactArgs(2),
			RunE:  a.runE(a.connect),
		},
		&cobra.Command{
			Use:   "login <id>",
			Short: "Connect a user and remember it",
			Args:  exactArgs(1),
			RunE:  a.runE(a.login),
		},
		&cobra.Command{
			Use:   "logout <id>",
			Short: "Disconnect a user and forget it",
			Args:  exactArgs(1),
			RunE:  a.runE(a.logout),
		},
		&cobra.Command{
			Use:   "whoami",
			Short: "Show the remembered user id",
			Args:  exactArgs(0),
			RunE:  a.runE(a.whoami),
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Forget the remembered user id locally",
			Args:  exactArgs(0),
			RunE:  a.runE(a.clear),
		},
		&cobra.Command{
			Use:   "email <id> <email>",
			Short: "Change a user email",
			Args:  exactArgs(2),
			RunE:  a.runE(a.email),
		},
		&cobra.Command{
			Use:   "wallet-add <id> <amount>",
			Short: "Add money to a wallet",
			Args:  exactArgs(2),
			RunE:  a.runE(a.walletAdd),
		},
		&cobra.Command{
			Use:   "wallet-deduct <id> <amount>",
			Short: "Deduct money from a wallet",
			Args:  exactArgs(2),
			RunE:  a.runE(a.walletDeduct),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show build information",
			Args:  exactArgs(0),
			RunE:  a.runE(a.version),
		},
	)

	return root
}

// runE adapts a handler to cobra and logs the invocation.
func (a *App) runE(fn func(ctx context.Context, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a.logger.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("running command")
		return fn(cmd.Context(), args)
	}
}

func rootArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
	return nil
}

func exactArgs(n int) cobra.PositionalArgs {
	check := cobra.ExactArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrUsage, cmd.UseLine(), err)
		}
		return nil
	}
}
