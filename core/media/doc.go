// Package media loads stored logo files.
//
// Loader is implemented by LocalLoader, which reads from a directory opened with
// os.OpenRoot, and by the S3 loader in integration/storage/s3. Keys are
// relative slash-separated paths; anything that is not already a clean key
// (leading slash, "..", backslashes, odd characters) is rejected with
// ErrInvalidPath. Reads are capped and fail with ErrTooLarge.
//
//	loader, err := media.NewLocalLoader("data/uploads", media.DefaultMaxSize)
//	data, err := loader.Load(ctx, "brand/logo.png")
//	if errors.Is(err, media.ErrFileNotFound) {
//		// no logo
//	}
package media
