package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/banit/househunt-backend/internal/config"
	"github.com/banit/househunt-backend/internal/database"
	"github.com/banit/househunt-backend/internal/listing"
	"github.com/banit/househunt-backend/internal/models"
	"github.com/banit/househunt-backend/internal/repository"
	"github.com/banit/househunt-backend/internal/types"
	"github.com/banit/househunt-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	logger.Init()

	rootCmd := &cobra.Command{
		Use:   "rentalctl",
		Short: "Maintenance tasks for the househunt backend",
	}

	rootCmd.AddCommand(
		migrateCmd(),
		rankCmd(),
		exportRankingCmd(),
		notifyCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openDB() (*gorm.DB, error) {
	db, err := database.Open(config.Load().DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update all tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}

func rankedManagers(ctx context.Context, limit int) ([]types.ManagerSummary, error) {
	db, err := openDB()
	if err != nil {
		return nil, err
	}
	managers, err := repository.NewManagerRepository(db).FetchActiveManagersWithHouses(ctx)
	if err != nil {
		return nil, err
	}
	return listing.RankManagers(managers, nil, limit), nil
}

func rankCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print managers ordered by average rating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ranked, err := rankedManagers(cmd.Context(), limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RANK\tID\tMANAGER\tRATING\tREVIEWS\tACTIVE HOUSES")
			for i, m := range ranked {
				fmt.Fprintf(w, "%d\t%d\t%s\t%.2f\t%d\t%d\n", i+1, m.ID, m.Name, m.AverageRatings, m.TotalReviews, m.ActiveHouses)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", listing.RankLimit, "number of managers to show, 0 for all")
	return cmd
}

func exportRankingCmd() *cobra.Command {
	var out string
	var limit int

	cmd := &cobra.Command{
		Use:   "export-ranking",
		Short: "Write the manager ranking to an xlsx file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ranked, err := rankedManagers(cmd.Context(), limit)
			if err != nil {
				return err
			}

			data, err := listing.ExportRankingXLSX(ranked)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d managers to %s\n", len(ranked), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "manager-ranking.xlsx", "output file")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of managers to export, 0 for all")
	return cmd
}

func notifyCmd() *cobra.Command {
	var recipient, title, message string

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send a notification to one user or to everyone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title, message = strings.TrimSpace(title), strings.TrimSpace(message)
			if title == "" || message == "" {
				return errors.New("--title and --message are required")
			}
			if recipient != models.NotificationBroadcast {
				if _, err := strconv.ParseUint(recipient, 10, 32); err != nil {
					return fmt.Errorf("invalid recipient %q", recipient)
				}
			}

			db, err := openDB()
			if err != nil {
				return err
			}

			n := &models.Notification{Recipient: recipient, Title: title, Message: message}
			if err := repository.NewNotificationRepository(db).Create(cmd.Context(), n); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Notification %d sent to %s\n", n.ID, recipient)
			return nil
		},
	}

	cmd.Flags().StringVar(&recipient, "recipient", models.NotificationBroadcast, `user id, or "all"`)
	cmd.Flags().StringVar(&title, "title", "", "notification title")
	cmd.Flags().StringVar(&message, "message", "", "notification body")
	return cmd
}
