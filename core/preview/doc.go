// Package preview issues short-lived JWTs that let an administrator see the
// site while the coming-soon screen is active.
//
//	svc, err := preview.New(preview.Config{Secret: os.Getenv("PREVIEW_JWT_SECRET")})
//	tok, expires, err := svc.Mint("alice", 2*time.Hour)
//
//	claims, err := svc.Verify(tok)
//
// Tokens are HS256, issued by "comingsoon" for the "comingsoon-preview"
// audience and carry scope "preview". Verify rejects anything else.
package preview
