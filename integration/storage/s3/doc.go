// Package s3 loads logo objects from Amazon S3 or an S3-compatible service.
//
//	loader, err := s3.New(ctx, s3.Config{
//		Bucket: "brand-assets",
//		Region: "eu-west-1",
//		Prefix: "comingsoon",
//	})
//	data, err := loader.Load(ctx, "logo.png") // reads comingsoon/logo.png
//
// Static credentials are used when AccessKeyID and SecretKey are set; otherwise
// the default AWS credential chain applies. Set Endpoint and ForcePathStyle for
// MinIO and similar services.
//
// Errors are classified into core/media sentinels (ErrFileNotFound,
// ErrAccessDenied, ErrServiceUnavailable, ...) using the smithy API error code.
package s3
