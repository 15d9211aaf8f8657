// Copyright (c) 2026 Server Settings Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// settingsq resolves settings through the standard source chain from the
// command line, which is handy for inspecting what a service will see at
// runtime.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	settings "github.com/jtheisen/server-settings"

	"github.com/spf13/cobra"
)

func main() {
	err := buildCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "settingsq",
		Short:         "Query resolved server settings",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(buildGetCmd())
	return cmd
}

func buildGetCmd() *cobra.Command {
	var (
		valueType string
		defValue  string
		program   string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Resolve a single setting through the standard source chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))

			if program == "" {
				program = settings.ProgramName()
			}

			r := settings.New(settings.Chain(
				settings.FileInHome(program, settings.WithLogger(log)),
				settings.FileNextToBinary(settings.WithLogger(log)),
				settings.FromPlatform(),
				settings.FromEnv(),
			))

			hasDefault := cmd.Flags().Changed("default")

			name := args[0]
			switch valueType {
			case "string":
				if hasDefault {
					fmt.Fprintln(cmd.OutOrStdout(), r.StringOr(name, defValue))
					return nil
				}
				v, err := r.String(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
			case "int":
				if hasDefault {
					def, err := strconv.Atoi(defValue)
					if err != nil {
						return fmt.Errorf("--default is not a valid int: %q", defValue)
					}
					fmt.Fprintln(cmd.OutOrStdout(), r.IntOr(name, def))
					return nil
				}
				v, err := r.Int(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
			case "bool":
				if hasDefault {
					def, err := strconv.ParseBool(defValue)
					if err != nil {
						return fmt.Errorf("--default is not a valid bool: %q", defValue)
					}
					fmt.Fprintln(cmd.OutOrStdout(), r.BoolOr(name, def))
					return nil
				}
				v, err := r.Bool(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
			default:
				return fmt.Errorf("unknown --type: %q", valueType)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&valueType, "type", "string", `parse the value as this type ("string", "int" or "bool")`)
	cmd.Flags().StringVar(&defValue, "default", "", "fallback when the setting is missing or malformed")
	cmd.Flags().StringVar(&program, "program", "", "program name for the home settings file (defaults to this binary's name)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log source loading details")

	return cmd
}
