// Package client is the LuConnect gRPC client used by the CLI.
//
// GRPCClient keeps the access and refresh tokens returned by Login, sends the
// access token as "authorization: Bearer <token>" on every call and, when the
// server answers "token expired", refreshes the access token once and retries.
// gRPC status codes are mapped to the sentinel errors in errors.go.
package client
