// Package server runs an http.Handler with sane timeouts and graceful shutdown.
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, router))
//	return g.Wait()
//
// Run blocks until ctx is canceled, then drains in-flight requests for at most
// the shutdown timeout. TLS is enabled when both SERVER_TLS_CERT_FILE and
// SERVER_TLS_KEY_FILE are set.
package server
