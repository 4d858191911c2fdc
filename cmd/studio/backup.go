// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/colorstudio/internal/backup"
	"github.com/thatcatcamp/colorstudio/internal/config"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage palette backups",
	Long:  "Commands for managing backups of history and saved palettes: create, list, restore and delete",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create [note]",
	Short: "Back up history and saved palettes now",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		s := mustOpenStudio(ctx)
		defer s.Close()

		path, err := newBackupManager(s).CreateBackup(ctx, strings.Join(args, " "))
		if err != nil {
			log.Fatalf("backup failed: %v", err)
		}
		fmt.Printf("Backup written to %s\n", path)
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available backups",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		manager := backup.NewBackupManager(config.GetString("backups.path"), nil)
		names, err := manager.ListBackups()
		if err != nil {
			log.Fatalf("failed to list backups: %v", err)
		}

		if len(names) == 0 {
			fmt.Println("No backups found")
			return
		}

		fmt.Println("Available backups:")
		for i, name := range names {
			info, err := os.Stat(filepath.Join(manager.BackupPath, name))
			if err != nil {
				continue
			}
			fmt.Printf("%d. %s (%s, %d bytes)\n", i+1, name, info.ModTime().Format("2006-01-02 15:04:05"), info.Size())
		}
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <filename>",
	Short: "Replace history and saved palettes from a backup",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			fmt.Printf("WARNING: This will overwrite your history and saved palettes.\n")
			fmt.Printf("Are you sure you want to restore from '%s'? (type 'yes' to confirm): ", filename)

			var confirmation string
			fmt.Scanln(&confirmation)
			if confirmation != "yes" {
				fmt.Println("Restore cancelled.")
				return
			}
		}

		ctx := context.Background()
		s := mustOpenStudio(ctx)
		defer s.Close()

		if err := newBackupManager(s).RestoreBackup(ctx, filename); err != nil {
			log.Fatalf("restore failed: %v", err)
		}

		fmt.Printf("Successfully restored from %s\n", filename)
	},
}

var backupDeleteCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Delete a backup",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		manager := backup.NewBackupManager(config.GetString("backups.path"), nil)
		if err := manager.DeleteBackup(args[0]); err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Printf("Successfully deleted %s\n", args[0])
	},
}

func newBackupManager(s *studio) *backup.BackupManager {
	manager := backup.NewBackupManager(config.GetString("backups.path"), s.store)
	if keep := config.GetInt("backups.keep"); keep > 0 {
		manager.Keep = keep
	}
	return manager
}

// startBackupScheduler runs periodic backups while the server is up
func startBackupScheduler(s *studio) (stop func()) {
	if !config.GetBool("backups.enabled") {
		return func() {}
	}

	scheduler := backup.NewScheduler(newBackupManager(s))
	scheduler.SetInterval(config.GetDuration("backups.interval"))
	done := scheduler.Start()
	log.Println("Backup scheduler started")

	return func() {
		scheduler.Stop()
		<-done
	}
}

func init() {
	backupRestoreCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	backupCmd.AddCommand(backupDeleteCmd)
}
