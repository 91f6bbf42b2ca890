// Package httputil provides HTTP helpers for JSON responses, path parameters and
// common middleware.
//
// # Response Helpers
//
//	httputil.WriteSuccess(w, data)
//	httputil.WriteCreated(w, resource)
//	httputil.WriteErrorMessage(w, http.StatusNotFound, "not found")
//
// # Path Parameters
//
//	id := httputil.PathParam(r, "id")
//
// # Middleware
//
//	handler := httputil.Chain(
//		httputil.RequestIDMiddleware,
//		httputil.LoggingMiddleware(logger),
//		httputil.RecoveryMiddleware(logger),
//	)(router)
package httputil
