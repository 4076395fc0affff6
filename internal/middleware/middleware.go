package middleware

import (
	"net/http"

	corsutil "github.com/NYCU-SDC/summer/pkg/cors"
	middlewareutil "github.com/NYCU-SDC/summer/pkg/middleware"
	traceutil "github.com/NYCU-SDC/summer/pkg/trace"
	"go.uber.org/zap"
)

type Middleware struct {
	logger       *zap.Logger
	debug        bool
	allowOrigins []string
}

func NewMiddleware(logger *zap.Logger, debug bool, allowOrigins []string) *Middleware {
	logger.Info("CORS middleware initialized", zap.Strings("allow_origins", allowOrigins))
	return &Middleware{
		logger:       logger,
		debug:        debug,
		allowOrigins: allowOrigins,
	}
}

func (m Middleware) TraceMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return traceutil.TraceMiddleware(next, m.logger)
}

func (m Middleware) RecoverMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return traceutil.RecoverMiddleware(next, m.logger, m.debug)
}

func (m Middleware) CORSMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return corsutil.CORSMiddleware(next, m.logger, m.allowOrigins)
}

// Wrap applies the middleware every API route shares: panic recovery first, then
// tracing, then CORS.
func (m Middleware) Wrap(next http.HandlerFunc) http.HandlerFunc {
	set := middlewareutil.NewSet(m.RecoverMiddleware)
	set = set.Append(m.TraceMiddleware)
	set = set.Append(m.CORSMiddleware)
	return set.HandlerFunc(next)
}

// Preflight answers CORS preflight requests; the CORS middleware sets the headers.
func Preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
