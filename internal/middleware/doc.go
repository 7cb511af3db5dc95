// Package middleware provides HTTP middleware for the EventMate API.
//
// The middleware package contains reusable components for request
// processing that wrap the route handlers.
//
// # Available Middleware
//
//   - RequestID: assigns (or preserves) an X-Request-ID for tracing
//   - Logger: structured request logging via log/slog
//   - Recovery: converts panics into a 500 JSON response
//   - CORS: origin checks and preflight handling
//   - Compress: gzip response compression when the client supports it
//
// # Usage
//
// Middlewares are applied with Chain, outermost first:
//
//	handler := middleware.Chain(mux,
//		middleware.Recovery,
//		middleware.RequestID,
//		middleware.Logger,
//		middleware.CORS(cfg.CORSAllowedOrigins),
//		middleware.Compress,
//	)
//
// # Context Values
//
// RequestID stores the request identifier in the context; handlers and
// downstream middleware read it with GetRequestID(r.Context()).
package middleware
