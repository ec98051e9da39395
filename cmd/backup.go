package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/budgt/budgt/internal/backup"
)

// NewExportCmd writes the full record set to a JSON backup file.
func NewExportCmd(adapter *backup.Adapter) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:          "export",
		Short:        "Export all accounts, transactions and tags to a JSON backup",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = backup.Filename(time.Now())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create backup file: %w", err)
			}
			defer func() {
				_ = f.Close()
			}()

			if err := adapter.Export(f); err != nil {
				return err
			}

			pterm.Success.Printf("Backup written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Backup file path (defaults to budgt-backup-<date>.json)")

	return cmd
}

// NewImportCmd restores records from a JSON backup. Records are
// upserted verbatim; account balances in the file are trusted as-is.
func NewImportCmd(adapter *backup.Adapter) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "import <backup-file>",
		Short:        "Import a JSON backup, replacing records with matching ids",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open backup file: %w", err)
			}
			defer func() {
				_ = f.Close()
			}()

			if err := adapter.Import(f); err != nil {
				return err
			}

			pterm.Success.Printf("Backup %s imported\n", args[0])
			return nil
		},
	}

	return cmd
}
