package service

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/kms/types"

	encryptionDomain "github.com/allisson/docseal/internal/encryption/domain"
)

// kmsAPI is the subset of the AWS KMS client used by AWSKeyService.
type kmsAPI interface {
	GenerateDataKey(
		ctx context.Context,
		params *kms.GenerateDataKeyInput,
		optFns ...func(*kms.Options),
	) (*kms.GenerateDataKeyOutput, error)
	Decrypt(
		ctx context.Context,
		params *kms.DecryptInput,
		optFns ...func(*kms.Options),
	) (*kms.DecryptOutput, error)
}

// AWSOptions configures the AWS KMS client. Empty fields fall back to the default
// AWS credential and region chain.
type AWSOptions struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	// Endpoint overrides the KMS endpoint (e.g., LocalStack).
	Endpoint string
}

// AWSKeyService implements KeyService with AWS KMS GenerateDataKey and Decrypt.
// Retries and timeouts are governed by the AWS SDK client configuration.
type AWSKeyService struct {
	client kmsAPI
}

// NewAWSKeyService creates an AWS KMS backed key service.
func NewAWSKeyService(ctx context.Context, opts AWSOptions) (*AWSKeyService, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, opts.SessionToken),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var kmsOpts []func(*kms.Options)
	if opts.Endpoint != "" {
		kmsOpts = append(kmsOpts, func(o *kms.Options) {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		})
	}

	return &AWSKeyService{client: kms.NewFromConfig(awsCfg, kmsOpts...)}, nil
}

// GenerateDataKey requests an AES-256 data key under keyID.
func (a *AWSKeyService) GenerateDataKey(ctx context.Context, keyID string) ([]byte, []byte, error) {
	out, err := a.client.GenerateDataKey(ctx, &kms.GenerateDataKeyInput{
		KeyId:   aws.String(keyID),
		KeySpec: types.DataKeySpecAes256,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: GenerateDataKey: %v", encryptionDomain.ErrKeyService, err)
	}
	if out == nil {
		return nil, nil, fmt.Errorf("%w: GenerateDataKey returned no output", encryptionDomain.ErrKeyService)
	}
	return out.Plaintext, out.CiphertextBlob, nil
}

// Decrypt unwraps a data key previously generated under keyID.
func (a *AWSKeyService) Decrypt(ctx context.Context, keyID string, wrapped []byte) ([]byte, error) {
	input := &kms.DecryptInput{CiphertextBlob: wrapped}
	if keyID != "" {
		input.KeyId = aws.String(keyID)
	}

	out, err := a.client.Decrypt(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: Decrypt: %v", encryptionDomain.ErrKeyService, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: Decrypt returned no output", encryptionDomain.ErrKeyService)
	}
	return out.Plaintext, nil
}

// Close is a no-op; the AWS client holds no resources that need releasing.
func (a *AWSKeyService) Close() error {
	return nil
}
