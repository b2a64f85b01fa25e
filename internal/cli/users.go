package cli

import (
	"context"
	"fmt"

	"bizdesk/internal/controller"
	"bizdesk/internal/forms"
	"bizdesk/internal/models"
	"bizdesk/internal/pagination"
	"bizdesk/internal/view"
)

func (a *App) usersCmd(ctx context.Context, args []string) error {
	name, rest, err := subcommand("users", args, "list", "show", "add", "edit", "delete")
	if err != nil {
		return err
	}
	c := controller.NewUserController(a.users, a.now)
	switch name {
	case "list":
		return a.listUsers(ctx, c, rest)
	case "show":
		return a.showUser(ctx, rest)
	case "add":
		return a.saveUser(ctx, c, 0, rest)
	case "edit":
		if len(rest) == 0 {
			return fmt.Errorf("usage: bizdesk users edit ID field=value...")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		return a.saveUser(ctx, c, id, rest[1:])
	default:
		return deleteEntity[models.User](ctx, a, c, "User", rest, func(u models.User) string { return u.FullName() })
	}
}

func (a *App) listUsers(ctx context.Context, c *controller.UserController, args []string) error {
	fs := a.flags("users list")
	text := fs.String("q", "", "Filter by name, email or phone")
	page := fs.Int("page", 1, "Page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.Refresh(ctx); err != nil {
		return a.failed(c.Notice(), err)
	}
	c.ApplyFilter(controller.Criteria{Text: *text})

	v := view.RenderUsers(view.UserState{
		Snapshot: c.Snapshot(),
		Now:      a.now(),
		Page:     pagination.PageRequest{Page: *page, PageSize: a.pageSize},
	})
	a.out.heading("Users")
	a.out.chrome(v.Chrome, "users")
	if v.Empty {
		return nil
	}
	rows := make([][]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		rows = append(rows, []string{formatID(r.ID), r.Initials, r.Name, r.Email, r.PhoneNumber, r.Joined})
	}
	a.out.table([]string{"ID", "", "Name", "Email", "Phone", "Joined"}, rows)
	return nil
}

func (a *App) showUser(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: bizdesk users show ID")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	u, err := a.users.Get(ctx, id)
	if err != nil {
		return err
	}
	row := view.RenderUsers(view.UserState{
		Snapshot: controller.Snapshot[models.User, controller.UserStats]{Filtered: []models.User{u}},
		Now:      a.now(),
	}).Rows[0]
	a.out.detail([][2]string{
		{"ID", formatID(u.ID)},
		{"Name", row.Name},
		{"Email", row.Email},
		{"Phone", row.PhoneNumber},
		{"Joined", row.Joined},
	})
	return nil
}

// saveUser creates a user when id is zero and otherwise updates user id,
// starting from its current values.
func (a *App) saveUser(ctx context.Context, c *controller.UserController, id int64, pairs []string) error {
	values, err := forms.Parse(pairs)
	if err != nil {
		return err
	}

	if id == 0 {
		c.BeginCreate()
	} else {
		if err := c.Refresh(ctx); err != nil {
			return a.failed(c.Notice(), err)
		}
		existing, ok := c.Find(id)
		if !ok || !c.BeginEdit(id) {
			return notFound("User", id)
		}
		values = forms.UserValues(existing).Merge(values)
	}

	draft, err := forms.UserDraftFromValues(values)
	if err != nil {
		return err
	}
	saved, err := c.Submit(ctx, draft)
	if err != nil {
		return a.failed(c.Notice(), err)
	}
	a.out.notice(c.Notice())
	a.out.note(fmt.Sprintf("User %d: %s <%s>", saved.ID, saved.FullName(), saved.Email))
	return nil
}
