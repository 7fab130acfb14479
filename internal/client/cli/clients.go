package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/luconnect/luconnect/internal/api"
)

func (a *App) Clients(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	if len(args) == 0 {
		return a.listClients(ctx)
	}

	switch args[0] {
	case "add":
		return a.addClient(ctx)
	case "show", "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: clients %s <id>", args[0])
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if args[0] == "show" {
			return a.showClient(ctx, id)
		}
		return a.deleteClient(ctx, id)
	default:
		return fmt.Errorf("unknown clients subcommand %q", args[0])
	}
}

func (a *App) listClients(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	list, err := a.api.ListClients(ctx, api.ListClientsRequest{})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCPF")
	for _, c := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.CPF)
	}
	return w.Flush()
}

func (a *App) addClient(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	cpf, err := getSimpleText(a.reader, "CPF (11 digits)", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	c, err := a.api.CreateClient(ctx, api.Client{Name: name, Email: email, CPF: cpf})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Client %d created\n", c.ID)
	return nil
}

func (a *App) showClient(ctx context.Context, id int64) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	c, err := a.api.GetClient(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "id:    %d\nname:  %s\nemail: %s\ncpf:   %s\n", c.ID, c.Name, c.Email, c.CPF)
	return nil
}

func (a *App) deleteClient(ctx context.Context, id int64) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.DeleteClient(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Client %d deleted\n", id)
	return nil
}
