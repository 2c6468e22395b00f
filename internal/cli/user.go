package cli

import (
	"context"
	"fmt"

	"github.com/healthtrackapp/healthtrack/internal/user"
)

func (a *App) createUser(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: create-user <name>")
	}

	u, err := a.users.Create(ctx, user.CreateUserDTO{Name: args[0]})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created user %s (id %s)\n", u.Name, u.ID)
	return nil
}

func (a *App) listUsers(ctx context.Context) error {
	users, err := a.users.List(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users yet. Create one with: create-user <name>")
		return nil
	}

	for _, u := range users {
		fmt.Fprintf(a.out, "%s\t%s\n", u.Name, u.ID)
	}
	return nil
}
