package s3

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/comingsoon/core/media"
	"github.com/dmitrymomot/comingsoon/core/sanitizer"
)

var _ media.Loader = (*Loader)(nil)

// Client is the subset of the S3 API used by Loader.
type Client interface {
	GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3aws.HeadBucketInput, optFns ...func(*s3aws.Options)) (*s3aws.HeadBucketOutput, error)
}

// Loader reads logo objects from a bucket. Safe for concurrent use.
type Loader struct {
	client  Client
	bucket  string
	prefix  string
	maxSize int64
	timeout time.Duration
}

// Option configures a Loader.
type Option func(*options)

type options struct {
	httpClient      *http.Client
	client          Client
	configOptions   []func(*config.LoadOptions) error
	clientOptions   []func(*s3aws.Options)
	downloadTimeout time.Duration
}

// WithClient sets a pre-configured client. Primarily used for testing.
func WithClient(client Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithConfigOption adds a custom AWS config option.
func WithConfigOption(option func(*config.LoadOptions) error) Option {
	return func(o *options) {
		o.configOptions = append(o.configOptions, option)
	}
}

// WithClientOption adds a custom S3 client option.
func WithClientOption(option func(*s3aws.Options)) Option {
	return func(o *options) {
		o.clientOptions = append(o.clientOptions, option)
	}
}

// WithDownloadTimeout bounds each Load call.
func WithDownloadTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.downloadTimeout = timeout
	}
}

// New creates a Loader. Credentials fall back to the default AWS chain when
// cfg carries no static keys.
func New(ctx context.Context, cfg Config, opts ...Option) (*Loader, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, media.ErrInvalidConfig
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}
		if o.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(o.httpClient))
		}
		awsOptions = append(awsOptions, o.configOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(so *s3aws.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle
			for _, opt := range o.clientOptions {
				opt(so)
			}
		})
	}

	return &Loader{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  sanitizer.ObjectKey(cfg.Prefix),
		maxSize: cfg.MaxSize,
		timeout: o.downloadTimeout,
	}, nil
}

// Load downloads the object stored under key (below the configured prefix).
func (l *Loader) Load(ctx context.Context, key string) ([]byte, error) {
	clean := sanitizer.ObjectKey(key)
	if clean == "" || clean != key {
		return nil, fmt.Errorf("%w: %q", media.ErrInvalidPath, key)
	}
	if l.prefix != "" {
		clean = path.Join(l.prefix, clean)
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	out, err := l.client.GetObject(ctx, &s3aws.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(clean),
	})
	if err != nil {
		return nil, classifyS3Error(err, "get object")
	}
	defer out.Body.Close()

	if l.maxSize > 0 && out.ContentLength != nil && *out.ContentLength > l.maxSize {
		return nil, media.ErrTooLarge
	}

	data, err := media.ReadLimited(out.Body, l.maxSize)
	if err != nil {
		return nil, classifyS3Error(err, "read object")
	}
	return data, nil
}

// Healthcheck returns a readiness probe that checks the bucket is reachable.
func (l *Loader) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := l.client.HeadBucket(ctx, &s3aws.HeadBucketInput{Bucket: aws.String(l.bucket)})
		return classifyS3Error(err, "head bucket")
	}
}
