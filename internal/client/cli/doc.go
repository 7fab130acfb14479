// Package cli provides the interactive LuConnect command-line client.
//
// App wires configuration and the gRPC client to a small REPL: register,
// login, refresh, whoami and logout for the account, plus clients, products
// and orders commands for the CRUD surface. A background watcher pings the
// server and shows online or offline in the prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
