package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/luconnect/luconnect/internal/api"
)

func (a *App) Orders(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	if len(args) == 0 {
		return a.listOrders(ctx, 0)
	}

	switch args[0] {
	case "add":
		return a.addOrder(ctx)
	case "show":
		if len(args) < 2 {
			return fmt.Errorf("usage: orders show <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		return a.showOrder(ctx, id)
	default:
		clientID, err := parseID(args[0])
		if err != nil {
			return fmt.Errorf("unknown orders subcommand %q", args[0])
		}
		return a.listOrders(ctx, clientID)
	}
}

func (a *App) listOrders(ctx context.Context, clientID int64) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	list, err := a.api.ListOrders(ctx, clientID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCLIENT\tITEMS\tTOTAL\tCREATED")
	for _, o := range list {
		client := strconv.FormatInt(o.ClientID, 10)
		if o.Client != nil {
			client = o.Client.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", o.ID, client, len(o.Items), formatCents(o.TotalCents), o.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

// addOrder reads "product_id quantity" lines until an empty line.
func (a *App) addOrder(ctx context.Context) error {
	clientID, err := getInt64(a.reader, "Client ID", a.out)
	if err != nil {
		return err
	}

	req := api.CreateOrderRequest{ClientID: clientID}
	fmt.Fprintln(a.out, "Items as '<product_id> <quantity>', empty line to finish")
	for {
		line, err := getSimpleText(a.reader, "Item", a.out)
		if err != nil {
			return err
		}
		if line == "" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			fmt.Fprintln(a.out, "expected '<product_id> <quantity>'")
			continue
		}
		productID, err := parseID(fields[0])
		if err != nil {
			return err
		}
		qty, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return fmt.Errorf("not a number: %q", fields[1])
		}
		req.Items = append(req.Items, api.CreateOrderItem{ProductID: productID, Quantity: int32(qty)})
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	o, err := a.api.CreateOrder(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Order %d created, total %s\n", o.ID, formatCents(o.TotalCents))
	return nil
}

func (a *App) showOrder(ctx context.Context, id int64) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	o, err := a.api.GetOrder(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "order %d for client %d, total %s\n", o.ID, o.ClientID, formatCents(o.TotalCents))
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tQTY\tUNIT")
	for _, it := range o.Items {
		name := strconv.FormatInt(it.ProductID, 10)
		if it.Product != nil {
			name = it.Product.Description
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, it.Quantity, formatCents(it.PriceCents))
	}
	return w.Flush()
}
