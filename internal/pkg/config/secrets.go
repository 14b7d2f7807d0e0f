// internal/pkg/config/secrets.go
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretKeys are the values the secrets overlay may replace
var SecretKeys = []string{"DB_PASSWORD", "JWT_SECRET", "TELEGRAM_BOT_TOKEN"}

// SecretsManager resolves secret values by key
type SecretsManager interface {
	GetSecrets(ctx context.Context, keys []string) (map[string]string, error)
}

type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// AWSSecretsManager implements AWS Secrets Manager integration
type AWSSecretsManager struct {
	client     secretsAPI
	secretName string
	cache      map[string]string
	cacheMu    sync.RWMutex
	lastFetch  time.Time
	ttl        time.Duration
	logger     *slog.Logger
}

// NewAWSSecretsManager creates a new AWS Secrets Manager client
func NewAWSSecretsManager(ctx context.Context, region, secretName string, logger *slog.Logger) (*AWSSecretsManager, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return newAWSSecretsManager(secretsmanager.NewFromConfig(cfg), secretName, logger), nil
}

func newAWSSecretsManager(client secretsAPI, secretName string, logger *slog.Logger) *AWSSecretsManager {
	return &AWSSecretsManager{
		client:     client,
		secretName: secretName,
		cache:      make(map[string]string),
		ttl:        5 * time.Minute,
		logger:     logger,
	}
}

// GetSecrets retrieves multiple secrets. Missing keys are left out of the result.
func (sm *AWSSecretsManager) GetSecrets(ctx context.Context, keys []string) (map[string]string, error) {
	sm.cacheMu.RLock()
	if time.Since(sm.lastFetch) < sm.ttl && len(sm.cache) > 0 {
		cached := filterSecrets(sm.cache, keys)
		sm.cacheMu.RUnlock()
		sm.logger.Debug("returning cached secrets")
		return cached, nil
	}
	sm.cacheMu.RUnlock()

	sm.logger.Info("fetching secrets from AWS Secrets Manager",
		slog.String("secret_name", sm.secretName))

	result, err := sm.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(sm.secretName),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get secret value: %w", err)
	}
	if result.SecretString == nil {
		return nil, fmt.Errorf("secret %s has no string value", sm.secretName)
	}

	var secretData map[string]string
	if err := json.Unmarshal([]byte(*result.SecretString), &secretData); err != nil {
		return nil, fmt.Errorf("failed to parse secret JSON: %w", err)
	}

	sm.cacheMu.Lock()
	sm.cache = secretData
	sm.lastFetch = time.Now()
	sm.cacheMu.Unlock()

	filtered := filterSecrets(secretData, keys)
	for _, key := range keys {
		if _, ok := filtered[key]; !ok {
			sm.logger.Warn("secret key not found in AWS Secrets Manager",
				slog.String("key", key))
		}
	}

	return filtered, nil
}

func filterSecrets(all map[string]string, keys []string) map[string]string {
	filtered := make(map[string]string, len(keys))
	for _, key := range keys {
		if val, ok := all[key]; ok && val != "" {
			filtered[key] = val
		}
	}
	return filtered
}

// EnvSecretsManager implements secrets management using environment variables
type EnvSecretsManager struct{}

// NewEnvSecretsManager creates a new environment-based secrets manager
func NewEnvSecretsManager() *EnvSecretsManager {
	return &EnvSecretsManager{}
}

// GetSecrets retrieves multiple secrets from environment variables
func (em *EnvSecretsManager) GetSecrets(_ context.Context, keys []string) (map[string]string, error) {
	secrets := make(map[string]string)
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			secrets[key] = val
		}
	}
	return secrets, nil
}

// applySecrets overlays secrets from SECRETS_PROVIDER onto cfg
func applySecrets(ctx context.Context, cfg *Config, logger *slog.Logger) error {
	var sm SecretsManager
	switch provider := getEnv("SECRETS_PROVIDER", "env"); provider {
	case "env":
		sm = NewEnvSecretsManager()
	case "aws":
		name := getEnv("SECRETS_NAME", "")
		if name == "" {
			return fmt.Errorf("%w: SECRETS_NAME", ErrMissingRequiredConfig)
		}
		awsManager, err := NewAWSSecretsManager(ctx, cfg.AWS.Region, name, logger)
		if err != nil {
			return err
		}
		sm = awsManager
	default:
		return fmt.Errorf("unknown secrets provider %q", provider)
	}

	return overlaySecrets(ctx, cfg, sm)
}

func overlaySecrets(ctx context.Context, cfg *Config, sm SecretsManager) error {
	secrets, err := sm.GetSecrets(ctx, SecretKeys)
	if err != nil {
		return err
	}

	if v, ok := secrets["DB_PASSWORD"]; ok {
		cfg.Database.Password = v
	}
	if v, ok := secrets["JWT_SECRET"]; ok {
		cfg.Security.JWTSecret = v
	}
	if v, ok := secrets["TELEGRAM_BOT_TOKEN"]; ok {
		cfg.Share.TelegramToken = v
	}
	return nil
}
