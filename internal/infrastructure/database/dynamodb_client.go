package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"construction_console/internal/config"
)

// ConnectDynamoDB creates the client behind the dynamodb store driver.
// When DYNAMODB_ENDPOINT is set (e.g. http://dynamodb:8000) every request goes there.
func ConnectDynamoDB(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	awsCfg, err := AWSConfig(ctx, cfg)
	if err != nil {
		config.LogError(config.GetLogger(), "database", "ConnectDynamoDB", "failed to create aws config", cfg.AWSRegion, err)
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
			config.Module("database").WithField("endpoint", cfg.DynamoDBEndpoint).Info("using custom dynamodb endpoint")
		}
	}), nil
}

// AWSConfig builds the SDK config with static credentials. DynamoDB Local ignores them but
// the SDK still signs requests.
func AWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	)
}
