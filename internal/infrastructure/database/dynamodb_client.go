package database

import (
	"context"

	appconfig "palettepad/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// ConnectDynamoDB creates a DynamoDB client from the service configuration.
// DYNAMODB_ENDPOINT points it at DynamoDB Local.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.Config) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	endpoint := cfg.DynamoDBEndpoint
	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	zap.S().Infof("[database][dynamodb] client ready region=%s endpoint=%q", cfg.AWSRegion, endpoint)
	return client, nil
}

func NewAWSConfig(ctx context.Context, cfg appconfig.Config) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(creds),
	)
}
