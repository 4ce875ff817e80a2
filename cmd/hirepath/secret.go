package main

import (
	"errors"
	"fmt"
	"sort"

	"hirepath-engine/internal/secrets"

	"github.com/spf13/cobra"
)

func newSecretCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage API keys in the OS keychain",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <name> <value>",
		Short: "Store a secret",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !secrets.Known(name) {
				return fmt.Errorf("unknown secret %q", name)
			}
			return secrets.Set(name, args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <name>",
		Short: "Print a secret's value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := secrets.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a secret from the keychain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !secrets.Known(name) {
				return fmt.Errorf("unknown secret %q", name)
			}
			err := secrets.Delete(name)
			if errors.Is(err, secrets.ErrNotFound) {
				return nil
			}
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show which secrets resolve (keychain or env)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := secrets.Status()
			names := make([]string, 0, len(st))
			for n := range st {
				names = append(names, n)
			}
			sort.Strings(names)
			for _, n := range names {
				state := "unset"
				if st[n] {
					state = "set"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", n, state)
			}
			return nil
		},
	})

	return cmd
}
