package s3_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/comingsoon/core/media"
	"github.com/dmitrymomot/comingsoon/integration/storage/s3"
)

type fakeClient struct {
	objects map[string][]byte
	err     error
	lastKey string
}

func (f *fakeClient) GetObject(ctx context.Context, in *s3aws.GetObjectInput, _ ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error) {
	f.lastKey = aws.ToString(in.Key)
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.objects[f.lastKey]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3aws.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: aws.Int64(int64(len(data))),
	}, nil
}

func (f *fakeClient) HeadBucket(ctx context.Context, in *s3aws.HeadBucketInput, _ ...func(*s3aws.Options)) (*s3aws.HeadBucketOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &s3aws.HeadBucketOutput{}, nil
}

func newLoader(t *testing.T, client *fakeClient, cfg s3.Config) *s3.Loader {
	t.Helper()
	if cfg.Bucket == "" {
		cfg.Bucket = "assets"
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	l, err := s3.New(context.Background(), cfg, s3.WithClient(client))
	require.NoError(t, err)
	return l
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := s3.New(context.Background(), s3.Config{Region: "us-east-1"})
	assert.ErrorIs(t, err, media.ErrInvalidConfig)
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("reads object below prefix", func(t *testing.T) {
		client := &fakeClient{objects: map[string][]byte{"site/logo.png": []byte("png")}}
		l := newLoader(t, client, s3.Config{Prefix: "/site/"})

		data, err := l.Load(ctx, "logo.png")
		require.NoError(t, err)
		assert.Equal(t, "png", string(data))
		assert.Equal(t, "site/logo.png", client.lastKey)
	})

	t.Run("missing object", func(t *testing.T) {
		l := newLoader(t, &fakeClient{}, s3.Config{})
		_, err := l.Load(ctx, "logo.png")
		assert.ErrorIs(t, err, media.ErrFileNotFound)
	})

	t.Run("too large", func(t *testing.T) {
		client := &fakeClient{objects: map[string][]byte{"logo.png": bytes.Repeat([]byte("x"), 10)}}
		l := newLoader(t, client, s3.Config{MaxSize: 4})
		_, err := l.Load(ctx, "logo.png")
		assert.ErrorIs(t, err, media.ErrTooLarge)
	})

	t.Run("invalid key", func(t *testing.T) {
		l := newLoader(t, &fakeClient{}, s3.Config{})
		_, err := l.Load(ctx, "../logo.png")
		assert.ErrorIs(t, err, media.ErrInvalidPath)
	})

	t.Run("classified errors", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
			want error
		}{
			{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, media.ErrAccessDenied},
			{"slow down", &smithy.GenericAPIError{Code: "SlowDown"}, media.ErrServiceUnavailable},
			{"no such bucket", &types.NoSuchBucket{}, media.ErrBucketNotFound},
			{"timeout", context.DeadlineExceeded, media.ErrOperationTimeout},
			{"canceled", context.Canceled, media.ErrOperationCanceled},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				l := newLoader(t, &fakeClient{err: tt.err}, s3.Config{})
				_, err := l.Load(ctx, "logo.png")
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("unknown api error keeps the original", func(t *testing.T) {
		orig := &smithy.GenericAPIError{Code: "Weird"}
		l := newLoader(t, &fakeClient{err: orig}, s3.Config{})
		_, err := l.Load(ctx, "logo.png")
		var apiErr smithy.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "Weird", apiErr.ErrorCode())
	})
}

func TestLoader_Healthcheck(t *testing.T) {
	assert.NoError(t, newLoader(t, &fakeClient{}, s3.Config{}).Healthcheck()(context.Background()))

	err := newLoader(t, &fakeClient{err: &smithy.GenericAPIError{Code: "AccessDenied"}}, s3.Config{}).Healthcheck()(context.Background())
	assert.ErrorIs(t, err, media.ErrAccessDenied)
}
