package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/luconnect/luconnect/internal/api"
	"github.com/luconnect/luconnect/internal/netx"
)

// uploadImage is a test seam for the presigned PUT.
var uploadImage = func(ctx context.Context, url string, data []byte) error {
	return netx.PutPresigned(ctx, nil, url, data)
}

func (a *App) Products(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	if len(args) == 0 {
		return a.listProducts(ctx)
	}

	switch args[0] {
	case "add":
		return a.addProduct(ctx)
	case "image":
		if len(args) < 2 {
			return fmt.Errorf("usage: products image <id> [file]")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		path := ""
		if len(args) > 2 {
			path = args[2]
		}
		return a.productImage(ctx, id, path)
	default:
		return fmt.Errorf("unknown products subcommand %q", args[0])
	}
}

func (a *App) listProducts(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	list, err := a.api.ListProducts(ctx, api.ListProductsRequest{})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDESCRIPTION\tPRICE\tSTOCK\tSECTION")
	for _, p := range list {
		section := ""
		if p.Section != nil {
			section = *p.Section
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", p.ID, p.Description, formatCents(p.PriceCents), p.Stock, section)
	}
	return w.Flush()
}

func (a *App) addProduct(ctx context.Context) error {
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	priceText, err := getSimpleText(a.reader, "Price (e.g. 4.99)", a.out)
	if err != nil {
		return err
	}
	price, err := parsePrice(priceText)
	if err != nil {
		return err
	}
	stockText, err := getSimpleText(a.reader, "Stock", a.out)
	if err != nil {
		return err
	}
	stock, err := strconv.ParseInt(stockText, 10, 32)
	if err != nil {
		return fmt.Errorf("not a number: %q", stockText)
	}
	section, err := getOptional(a.reader, "Section", a.out)
	if err != nil {
		return err
	}
	barcode, err := getOptional(a.reader, "Barcode", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	p, err := a.api.CreateProduct(ctx, api.Product{
		Description: description,
		PriceCents:  price,
		Stock:       int32(stock),
		Section:     section,
		Barcode:     barcode,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Product %d created\n", p.ID)
	return nil
}

// productImage asks for an upload URL and, when path is set, PUTs the file
// to it. Without a path the URL is printed for manual upload.
func (a *App) productImage(ctx context.Context, id int64, path string) error {
	var data []byte
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return err
		}
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	key, url, err := a.api.ProductImageUploadURL(ctx, id)
	if err != nil {
		return err
	}

	if path == "" {
		fmt.Fprintf(a.out, "key: %s\nupload with: curl -X PUT --upload-file <image> '%s'\n", key, url)
		return nil
	}

	if err := uploadImage(ctx, url, data); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Uploaded %s as %s\n", path, key)
	return nil
}
