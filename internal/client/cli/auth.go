package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/luconnect/luconnect/internal/api"
	"github.com/luconnect/luconnect/internal/client/client"
	"github.com/luconnect/luconnect/internal/common"
)

var errNotLoggedIn = errors.New("not logged in, use 'login' first")

// Register prompts for the account fields and creates the account.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	firstName, err := getOptional(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	lastName, err := getOptional(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.api.Register(ctx, api.RegisterRequest{
		Username:  userName,
		Email:     email,
		Password:  string(password),
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s (id=%d)\n", u.Username, u.ID)
	return nil
}

// Login prompts for credentials and stores the issued tokens in the client.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.Login(ctx, userName, password); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ModeOffline)
		}
		return err
	}

	a.userName = userName
	a.setMode(ModeOnline)
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Refresh forces a new access token from the stored refresh token.
func (a *App) Refresh(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.Refresh(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Access token refreshed")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	name, err := a.api.WhoAmI(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, name)
	return nil
}

// Logout forgets the tokens. Tokens already issued stay valid until they
// expire.
func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
