// Package api implements the HTTP surface of the habit API.
//
// # Routes
//
//	GET    /health              liveness check
//	GET    /metrics             Prometheus metrics
//	GET    /api/user/           list users
//	GET    /api/user/{id}       get user
//	PUT    /api/user/{id}       update user
//	DELETE /api/user/{id}       delete user
//	POST   /api/auth/register   register
//	POST   /api/auth/login      log in
//	POST   /api/auth/logout     log out
//	GET    /api/habits/         list habits
//	POST   /api/habits/         create habit
//	GET    /api/habits/{id}     get habit
//	DELETE /api/habits/{id}     delete habit
//
// Resource handlers are placeholders: they return fixed payloads, read nothing
// but path parameters and never change state.
//
// # Usage Example
//
//	server := api.NewServer(logger)
//	httpServer := api.NewHTTPServer(cfg, server)
//	log.Fatal(httpServer.ListenAndServe())
package api
