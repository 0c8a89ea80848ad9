package database

import (
	"context"
	"testing"

	"tractus/internal/infrastructure/config"

	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfig(t *testing.T) {
	cfg := config.Config{
		AWSRegion:          "sa-east-1",
		AWSAccessKeyID:     "local",
		AWSSecretAccessKey: "local",
		DynamoDBEndpoint:   "http://localhost:8000",
	}

	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, "sa-east-1", awsCfg.Region)

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	require.Equal(t, "local", creds.AccessKeyID)
	require.NotNil(t, awsCfg.EndpointResolverWithOptions)
}
