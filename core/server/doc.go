// Package server wraps http.Server with graceful shutdown and env-driven configuration.
//
// Run returns a function suitable for errgroup, so the HTTP listener shares a
// lifecycle with the rest of the process:
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, router))
//	return g.Wait()
//
// When ctx is canceled the server stops accepting connections and waits up to the
// shutdown timeout for in-flight requests.
package server
