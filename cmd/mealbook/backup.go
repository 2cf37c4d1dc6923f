package mealbook

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/jakubciszak/mealbook-cli/internal/service"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage data file backups",
}

var (
	backupOut    string
	backupDir    string
	restoreFile  string
	restoreForce bool
)

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a backup of the data file",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := resolveDataPath()
		if err != nil {
			return err
		}
		out := backupOut
		if out == "" {
			dir := backupDir
			if dir == "" {
				dir = filepath.Join(filepath.Dir(data), "backups")
			}
			out = filepath.Join(dir, fmt.Sprintf("mealbook-%s.db", time.Now().Format("20060102-150405")))
		}
		info, err := service.CreateBackup(data, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Backed up %d bytes to %s\n", info.SizeBytes, info.Path)
		fmt.Fprintf(cmd.OutOrStdout(), "sha256 %s\n", info.Checksum)
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := resolveDataPath()
		if err != nil {
			return err
		}
		dir := backupDir
		if dir == "" {
			dir = filepath.Join(filepath.Dir(data), "backups")
		}
		backups, err := service.ListBackups(dir)
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No backups in %s\n", dir)
			return nil
		}
		for _, b := range backups {
			checksum := b.Checksum
			if len(checksum) > 12 {
				checksum = checksum[:12]
			}
			if checksum == "" {
				checksum = "no checksum"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %d bytes  %s\n",
				b.CreatedAt.Format("2006-01-02 15:04"), filepath.Base(b.Path), b.SizeBytes, checksum)
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the data file from a backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := resolveDataPath()
		if err != nil {
			return err
		}
		if restoreFile == "" {
			return fmt.Errorf("--file is required")
		}
		if err := service.RestoreBackup(restoreFile, data, restoreForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Data file restored from %s\n", restoreFile)
		fmt.Fprintln(cmd.OutOrStdout(), "Run a doctor check to verify the restored data")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)

	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Backup file path")
	backupCreateCmd.Flags().StringVar(&backupDir, "dir", "", "Backup directory (default backups/ next to the data file)")
	backupListCmd.Flags().StringVar(&backupDir, "dir", "", "Backup directory")
	backupRestoreCmd.Flags().StringVar(&restoreFile, "file", "", "Backup file to restore")
	backupRestoreCmd.Flags().BoolVar(&restoreForce, "force", false, "Overwrite an existing data file")
}
