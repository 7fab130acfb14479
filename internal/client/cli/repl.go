package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Refresh(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
	Clients(ctx context.Context, args []string) error
	Products(ctx context.Context, args []string) error
	Orders(ctx context.Context, args []string) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit". Commands
// that prompt for input read from the same reader.
//
//	Not logged in: help, register, login, exit
//	Logged in:     help, whoami, refresh, clients, products, orders, logout, exit
//
//	clients                     list clients
//	clients add                 create a client
//	clients show <id>           show one client
//	clients rm <id>             delete a client
//	products                    list products
//	products add                create a product
//	products image <id> [file]  upload a product image, or print the upload URL
//	orders [client_id]          list orders, optionally for one client
//	orders add                  place an order
//	orders show <id>            show one order
//
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("lc %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		err = nil
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, refresh, clients, products, orders, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "refresh":
			err = a.Refresh(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "clients":
			err = a.Clients(ctx, args)

		case "products":
			err = a.Products(ctx, args)

		case "orders":
			err = a.Orders(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
