package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(open opener) *cobra.Command {
	var checkID, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full export, or one check with --check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, open, func(_ context.Context, s *session) error {
				ws := s.ws
				var b []byte
				var name string
				var err error
				if checkID != "" {
					b, name, err = ws.ExportCheck(checkID)
				} else {
					b, name, err = ws.ExportFull()
				}
				if err != nil {
					return err
				}

				if output == "" {
					_, err = cmd.OutOrStdout().Write(append(b, '\n'))
					return err
				}
				if output == "." {
					output = name
				}
				if err := os.WriteFile(output, b, 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", output)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&checkID, "check", "", "Export only this check id")
	cmd.Flags().StringVarP(&output, "output", "o", "", `Output file, "." for the suggested name (default stdout)`)
	return cmd
}

func newImportCmd(open opener) *cobra.Command {
	var replaceProfile bool
	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Import a full export or a single check export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import: %w", err)
			}
			return withSession(cmd, open, func(ctx context.Context, s *session) error {
				ws := s.ws
				kind, err := ws.Import(ctx, raw, replaceProfile)
				if err != nil {
					return err
				}
				if err := s.saved(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %s export, %d check(s) stored\n", kind, len(ws.Checks("")))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&replaceProfile, "replace-profile", false, "Also replace the profile from a full export")
	return cmd
}
