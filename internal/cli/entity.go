package cli

import (
	"context"
	"fmt"
	"strings"

	"bizdesk/internal/controller"
	"bizdesk/internal/ui"
)

// deletable is the part of a list controller the delete command drives.
type deletable[T controller.Entity] interface {
	Refresh(ctx context.Context) error
	Find(id int64) (T, bool)
	BeginDelete(id int64) bool
	DeleteSelected(ctx context.Context) error
	Cancel()
	Notice() ui.Notice
}

func deleteEntity[T controller.Entity](ctx context.Context, a *App, c deletable[T], noun string, args []string, describe func(T) string) error {
	lower := strings.ToLower(noun)
	fs := a.flags(lower + "s delete")
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: bizdesk %ss delete [-yes] ID", lower)
	}
	id, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}

	if err := c.Refresh(ctx); err != nil {
		return a.failed(c.Notice(), err)
	}
	e, ok := c.Find(id)
	if !ok || !c.BeginDelete(id) {
		return notFound(noun, id)
	}

	if !*yes {
		ok, err := a.confirm(fmt.Sprintf("Delete %s %q?", lower, describe(e)))
		if err != nil || !ok {
			c.Cancel()
			if err == nil {
				a.out.note("Cancelled")
			}
			return err
		}
	}

	if err := c.DeleteSelected(ctx); err != nil {
		return a.failed(c.Notice(), err)
	}
	a.out.notice(c.Notice())
	return nil
}

// subcommand splits args into the subcommand name and its arguments.
func subcommand(group string, args []string, names ...string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("usage: bizdesk %s %s", group, strings.Join(names, "|"))
	}
	for _, n := range names {
		if args[0] == n {
			return n, args[1:], nil
		}
	}
	return "", nil, fmt.Errorf("unknown %s command %q", group, args[0])
}
