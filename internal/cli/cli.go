// Package cli implements the bizdesk command line on top of the session,
// client, controller and view packages.
package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"bizdesk/internal/client"
	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/pagination"
	"bizdesk/internal/session"
	"bizdesk/internal/ui"

	"golang.org/x/term"
)

const usage = `Usage: bizdesk <command> [flags] [args]

Commands:
  login      [-u username] [-p password]
  logout
  whoami     [-verify]
  register   -first NAME -last NAME -email EMAIL -username NAME [-phone PHONE] [-password PASSWORD]
  dashboard
  users      list [-q text] [-page N] | show ID | add field=value... | edit ID field=value... | delete [-yes] ID
  expenses   list [-q text] [-category ID] [-month YYYY-MM|all] [-page N] | show ID | add field=value... | edit ID field=value... | delete [-yes] ID
  categories
  export     [-format json|csv|xlsx] [-o FILE]
`

// Options configures an App.
type Options struct {
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	PageSize int
	Now      func() time.Time
}

// App runs bizdesk commands against a session.
type App struct {
	session    *session.Store
	users      *client.Users
	expenses   *client.Expenses
	categories *client.Categories

	in       io.Reader
	lines    *bufio.Reader
	errOut   io.Writer
	out      *printer
	errp     *printer
	pageSize int
	now      func() time.Time
}

// New returns an App using sess for every request.
func New(sess *session.Store, opts Options) *App {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.PageSize <= 0 {
		opts.PageSize = pagination.DefaultPageSize
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &App{
		session:    sess,
		users:      client.NewUsers(sess),
		expenses:   client.NewExpenses(sess),
		categories: client.NewCategories(sess),
		in:         opts.Stdin,
		errOut:     opts.Stderr,
		out:        newPrinter(opts.Stdout),
		errp:       newPrinter(opts.Stderr),
		pageSize:   opts.PageSize,
		now:        opts.Now,
	}
}

// Run executes the command named by args[0]. It returns flag.ErrHelp when
// only usage was printed.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.errOut, usage)
		return flag.ErrHelp
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.whoami(ctx, rest)
	case "register":
		return a.register(ctx, rest)
	case "dashboard":
		return a.dashboard(ctx)
	case "users":
		return a.usersCmd(ctx, rest)
	case "expenses":
		return a.expensesCmd(ctx, rest)
	case "categories":
		return a.categoriesCmd(ctx)
	case "export":
		return a.exportCmd(ctx, rest)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(a.errOut, usage)
		return flag.ErrHelp
	default:
		fmt.Fprint(a.errOut, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// PrintError reports err on stderr. Errors whose notice was already shown
// are skipped.
func (a *App) PrintError(err error) {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return
	}
	var r reported
	if errors.As(err, &r) {
		return
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		a.errp.notice(ui.Notice{Level: ui.Danger, Message: err.Error()})
		return
	}
	a.errp.notice(ui.Notice{Level: ui.Danger, Message: appErr.Message})
	for _, f := range appErr.Fields {
		a.errp.line("  %s: %s", f.Field, f.Message)
	}
}

// reported wraps an error whose notice has already been printed.
type reported struct{ error }

func (r reported) Unwrap() error { return r.error }

// failed prints the controller's notice for err, when it has one.
func (a *App) failed(n ui.Notice, err error) error {
	if n.IsZero() || errors.Is(err, apperrors.ErrValidation) {
		return err
	}
	a.errp.notice(n)
	return reported{err}
}

func (a *App) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func (a *App) reader() *bufio.Reader {
	if a.lines == nil {
		a.lines = bufio.NewReader(a.in)
	}
	return a.lines
}

func (a *App) rawLine() (string, error) {
	line, err := a.reader().ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.errOut, label)
	line, err := a.rawLine()
	return strings.TrimSpace(line), err
}

// promptPassword reads without echo from a terminal, or a plain line from
// anything else.
func (a *App) promptPassword(label string) (string, error) {
	fmt.Fprint(a.errOut, label)
	if f, ok := a.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.errOut)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return a.rawLine()
}

func (a *App) confirm(question string) (bool, error) {
	answer, err := a.prompt(question + " [y/N]: ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Validation(apperrors.Invalid("id", "gt"))
	}
	return id, nil
}

func notFound(noun string, id int64) error {
	return apperrors.WithMessage(apperrors.ErrNotFound, fmt.Sprintf("%s %d not found", noun, id))
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
