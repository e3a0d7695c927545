package httpserver

import (
	"context"
	"fmt"
)

// Run maps the handlers and serves until the listener fails.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	ctx := context.Background()
	srv.l.Infof(ctx, "Starting HTTP server on port %d (mode: %s)", srv.port, srv.mode)

	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
