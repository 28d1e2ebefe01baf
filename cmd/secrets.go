package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

const (
	stripeSecretKeyParameter     = "/subscription-api/stripe/secret-key"
	stripeWebhookSecretParameter = "/subscription-api/stripe/webhook-secret"
)

type parameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// fillStripeSecrets loads any Stripe secret not set in the environment from
// SSM Parameter Store.
func fillStripeSecrets(ctx context.Context, client parameterGetter, cfg *Config) error {
	var err error

	if cfg.StripeSecretKey == "" {
		cfg.StripeSecretKey, err = getSecureParameter(ctx, client, stripeSecretKeyParameter)
		if err != nil {
			return err
		}
	}

	if cfg.StripeWebhookSecret == "" {
		cfg.StripeWebhookSecret, err = getSecureParameter(ctx, client, stripeWebhookSecretParameter)
		if err != nil {
			return err
		}
	}

	return nil
}

func getSecureParameter(ctx context.Context, client parameterGetter, name string) (string, error) {
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get ssm parameter %s: %w", name, err)
	}
	if out.Parameter == nil || aws.ToString(out.Parameter.Value) == "" {
		return "", fmt.Errorf("ssm parameter %s is empty", name)
	}

	return aws.ToString(out.Parameter.Value), nil
}
