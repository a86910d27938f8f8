package service

import (
	"context"
	"fmt"

	"app/internal/config"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
)

// SecretManagerService loads protocol secrets at startup. In production the
// Stripe API key comes from Secret Manager; locally it can be supplied via
// STRIPE_SECRET_KEY directly.
type SecretManagerService interface {
	GetStripeAPIKey(ctx context.Context) (string, error)
}

type secretManagerService struct {
	cfg    *config.Config
	client *secretmanager.Client
}

func NewSecretManagerService(ctx context.Context, cfg *config.Config) (SecretManagerService, error) {
	// With a key in the environment there is nothing to fetch remotely.
	if cfg.StripeSecretKey != "" {
		return &secretManagerService{cfg: cfg}, nil
	}

	if cfg.GCPProjectID == "" {
		return nil, fmt.Errorf("neither STRIPE_SECRET_KEY nor GCP_PROJECT_ID is set")
	}

	var opts []option.ClientOption
	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Secret Manager client: %w", err)
	}
	return &secretManagerService{cfg: cfg, client: client}, nil
}

func (s *secretManagerService) GetStripeAPIKey(ctx context.Context) (string, error) {
	if s.cfg.StripeSecretKey != "" {
		return s.cfg.StripeSecretKey, nil
	}

	resourceName := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", s.cfg.GCPProjectID, s.cfg.StripeSecretName)
	result, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: resourceName,
	})
	if err != nil {
		return "", fmt.Errorf("failed to access secret version %s: %w", resourceName, err)
	}
	return string(result.Payload.Data), nil
}
