package cli

import (
	"context"
	"fmt"

	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/models"
)

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.flags("login")
	username := fs.String("u", "", "Username (prompted when omitted)")
	password := fs.String("p", "", "Password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	creds := models.Credentials{Username: *username, Password: *password}
	var err error
	if creds.Username == "" {
		if creds.Username, err = a.prompt("Username: "); err != nil {
			return fmt.Errorf("read username: %w", err)
		}
	}
	if creds.Password == "" {
		if creds.Password, err = a.promptPassword("Password: "); err != nil {
			return fmt.Errorf("read password: %w", err)
		}
	}

	sess, err := a.session.Login(ctx, creds)
	if err != nil {
		return err
	}
	a.out.line("Signed in as %s (%s)", sess.User.Username, sess.User.Role)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.out.line("Signed out")
	return nil
}

func (a *App) whoami(ctx context.Context, args []string) error {
	fs := a.flags("whoami")
	verify := fs.Bool("verify", false, "Check the session with the server")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, ok := a.session.Session()
	if !ok || !a.session.IsAuthenticated() {
		return apperrors.ErrUnauthenticated
	}
	if !*verify {
		a.out.detail([][2]string{
			{"Username", sess.User.Username},
			{"Email", sess.User.Email},
			{"Role", string(sess.User.Role)},
		})
		return nil
	}

	acct, err := a.session.Verify(ctx)
	if err != nil {
		return err
	}
	a.out.detail([][2]string{
		{"ID", fmt.Sprint(acct.ID)},
		{"Username", acct.Username},
		{"Email", acct.Email},
		{"Role", string(acct.Role)},
		{"Enabled", fmt.Sprint(acct.Enabled)},
	})
	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.flags("register")
	var req models.RegisterRequest
	fs.StringVar(&req.FirstName, "first", "", "First name")
	fs.StringVar(&req.LastName, "last", "", "Last name")
	fs.StringVar(&req.Email, "email", "", "Email address")
	fs.StringVar(&req.PhoneNumber, "phone", "", "Phone number")
	fs.StringVar(&req.Username, "username", "", "Username")
	fs.StringVar(&req.Password, "password", "", "Password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req.ConfirmPassword = req.Password
	if req.Password == "" {
		var err error
		if req.Password, err = a.promptPassword("Password: "); err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		if req.ConfirmPassword, err = a.promptPassword("Confirm password: "); err != nil {
			return fmt.Errorf("read password: %w", err)
		}
	}

	auth, err := a.session.Register(ctx, req)
	if err != nil {
		return err
	}
	a.out.line("Registered %s. Run 'bizdesk login' to sign in.", auth.Username)
	return nil
}
