package s3

// Config contains S3 connection settings for the logo bucket.
type Config struct {
	Bucket         string `env:"S3_BUCKET"`
	Region         string `env:"S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"` // For S3-compatible services like MinIO, Wasabi
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`
	Prefix         string `env:"S3_PREFIX"`
	MaxSize        int64  `env:"S3_MAX_OBJECT_SIZE" envDefault:"10485760"`
}
