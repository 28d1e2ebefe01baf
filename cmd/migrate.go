package main

import (
	"context"
	"log/slog"

	"github.com/assettrack/subscription-api/dynamo"
	"github.com/assettrack/subscription-api/postgres"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the DynamoDB table and the Postgres schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context())
		},
	}
}

func runMigrate(ctx context.Context) error {
	cfg, err := getConfigFromEnv()
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Env)

	awsCfg, err := loadAWSConfig(ctx)
	if err != nil {
		return err
	}

	err = dynamo.CreateTable(ctx, newDynamoClient(awsCfg, cfg.DynamoEndpoint), cfg.DynamoTableName)
	if err != nil {
		return err
	}
	logger.Info("DynamoDB table ready", slog.String("table", cfg.DynamoTableName))

	sqlDB, err := postgres.Connect(ctx, cfg.PostgresURL)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	err = postgres.Migrate(ctx, sqlDB)
	if err != nil {
		return err
	}
	logger.Info("Postgres schema ready")

	return nil
}
