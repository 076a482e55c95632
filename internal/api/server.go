package api

import (
	"net/http"
	"time"

	"github.com/jonesrussell/gosign/internal/config"
	"github.com/jonesrussell/gosign/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

// NewHTTPServer builds the HTTP server with the router and the configured
// timeouts. The caller owns the server lifecycle.
func NewHTTPServer(
	log logger.Interface,
	h *Handler,
	cfg config.Interface,
) *http.Server {
	router := SetupRouter(log, h, cfg)

	srvCfg := cfg.GetServerConfig()
	return &http.Server{
		Addr:              srvCfg.Address,
		Handler:           router,
		ReadTimeout:       srvCfg.ReadTimeout,
		WriteTimeout:      srvCfg.WriteTimeout,
		IdleTimeout:       srvCfg.IdleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}
