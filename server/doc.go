// Package server wraps http.Server with graceful shutdown and
// production-ready timeout defaults.
//
// A Server is created from options or a Config loaded from the
// environment, then driven by a context:
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//
// Canceling the context drains in-flight requests within the configured
// shutdown timeout before Run returns.
package server
