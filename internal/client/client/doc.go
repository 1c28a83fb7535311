// Package client contains the client-side building blocks of the SafeWalk
// terminal.
//
// # Overview
//
//  1. A transport-agnostic API contract (the Client interface) covering
//     sessions, contacts, reports, settings and alerts.
//  2. A gRPC implementation (GRPCClient) that manages the connection,
//     injects the access token through an interceptor, bounds each call by
//     a request timeout and maps status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens
//     the SQLite state file and applies embedded goose migrations.
//
// # Error Handling
//
// Callers match with errors.Is: ErrUnavailable, ErrUnauthorized,
// ErrNotFound, ErrRejected. Rejections keep the server's message.
package client
