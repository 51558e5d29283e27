package aws

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"time"

	"top-sales-tracker/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/smithy-go"
	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrSecretNotFound is returned when neither Secrets Manager nor the environment holds the secret
var ErrSecretNotFound = errors.New("secret not found")

// SecretsManagerAPI is the subset of the Secrets Manager client used here.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// RetryConfig bounds the retries of transient Secrets Manager failures
type RetryConfig struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryConfig keeps a cold start lookup under a couple of seconds
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      3,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
	}
}

// SecretsManagerClient resolves credentials such as the Blockspan API key.
type SecretsManagerClient struct {
	svc   SecretsManagerAPI
	retry RetryConfig
}

// NewSecretsManagerClient uses the default AWS configuration chain. Retries are owned by
// this client, so the SDK's own retryer is limited to one attempt.
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS SDK config")
	}
	svc := secretsmanager.NewFromConfig(cfg, func(o *secretsmanager.Options) {
		o.RetryMaxAttempts = 1
	})
	return NewSecretsManagerClientWithAPI(svc), nil
}

func NewSecretsManagerClientWithAPI(svc SecretsManagerAPI) *SecretsManagerClient {
	return &SecretsManagerClient{svc: svc, retry: DefaultRetryConfig()}
}

// GetSecretString reads the secret whose ARN is held in arnEnvVar. A secret stored as a JSON
// object is searched for a key named fallbackEnvVar. When the ARN is unset or the lookup
// yields nothing, the value of fallbackEnvVar itself is used.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, arnEnvVar string, fallbackEnvVar string) (string, error) {
	log := logger.With(zap.String("arn_env_var", arnEnvVar), zap.String("fallback_env_var", fallbackEnvVar))

	if arn := os.Getenv(arnEnvVar); arn != "" && c.svc != nil {
		secret, err := c.fetch(ctx, arn, fallbackEnvVar)
		if err == nil {
			log.Debug("Resolved secret from Secrets Manager")
			return secret, nil
		}
		log.Warn("Secrets Manager lookup failed, falling back to environment", zap.Error(err))
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		log.Debug("Resolved secret from environment")
		return value, nil
	}

	return "", errors.Wrapf(ErrSecretNotFound, "checked %s and %s", arnEnvVar, fallbackEnvVar)
}

func (c *SecretsManagerClient) fetch(ctx context.Context, arn, key string) (string, error) {
	var result *secretsmanager.GetSecretValueOutput
	operation := func() error {
		out, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(arn),
		})
		if err != nil {
			if !isTransient(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		result = out
		return nil
	}
	notify := func(err error, wait time.Duration) {
		logger.FromContext(ctx).Debug("Retrying Secrets Manager lookup",
			zap.Error(err),
			zap.Duration("wait", wait))
	}

	if err := backoff.RetryNotify(operation, c.backOff(ctx), notify); err != nil {
		return "", errors.Wrap(err, "get secret value")
	}

	secret := strings.TrimSpace(aws.ToString(result.SecretString))
	if secret == "" {
		return "", errors.New("secret has no string value")
	}
	if !strings.HasPrefix(secret, "{") {
		return secret, nil
	}

	var fields map[string]string
	if err := json.Unmarshal([]byte(secret), &fields); err != nil {
		return "", errors.Wrap(err, "decode JSON secret")
	}
	if value := fields[key]; value != "" {
		return value, nil
	}
	return "", errors.Errorf("JSON secret has no %q field", key)
}

func (c *SecretsManagerClient) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.retry.InitialInterval
	exp.MaxInterval = c.retry.MaxInterval
	return backoff.WithContext(backoff.WithMaxRetries(exp, c.retry.MaxRetries), ctx)
}

// isTransient reports whether a lookup is worth repeating. Client faults such as a missing
// secret or denied access are final, apart from throttling; server faults and transport
// errors are retried.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ThrottlingException", "TooManyRequestsException":
			return true
		}
		return apiErr.ErrorFault() != smithy.FaultClient
	}
	return true
}
