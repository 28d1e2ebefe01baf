package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/assettrack/subscription-api/api"
	"github.com/assettrack/subscription-api/dynamo"
	"github.com/assettrack/subscription-api/payments"
	"github.com/assettrack/subscription-api/postgres"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx)
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := getConfigFromEnv()
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Env)

	awsCfg, err := loadAWSConfig(ctx)
	if err != nil {
		return err
	}

	if cfg.Env == api.PROD {
		err = fillStripeSecrets(ctx, ssm.NewFromConfig(awsCfg), &cfg)
		if err != nil {
			return err
		}
	}
	if cfg.StripeSecretKey == "" || cfg.StripeWebhookSecret == "" {
		return errors.New("STRIPE_SECRET_KEY and STRIPE_WEBHOOK_SECRET must be set")
	}

	sqlDB, err := postgres.Connect(ctx, cfg.PostgresURL)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	registrations := dynamo.NewDB(newDynamoClient(awsCfg, cfg.DynamoEndpoint), cfg.DynamoTableName)
	surveys := postgres.NewDB(sqlDB)
	gateway := payments.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret, nil)
	emailSender := createEmailSender(awsCfg, logger, cfg.Env)

	server := api.NewAPI(registrations, surveys, logger, cfg.Env, gateway, emailSender, cfg.EmailFromAddress, cfg.AllowedOrigins)

	err = server.ListenAndServe(ctx, cfg.Host, cfg.Port)
	if err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
