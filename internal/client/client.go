// Package client provides typed access to the collaborator's entity
// collections. Every call goes through an authorized requester so the
// session's bearer token, forced logout and error taxonomy apply uniformly.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/models"
)

// Collection endpoints.
const (
	UsersPath      = "/api/users"
	ExpensesPath   = "/api/expenses"
	CategoriesPath = "/api/expense-categories"
)

// Requester sends authenticated requests. *session.Store implements it.
type Requester interface {
	AuthorizedRequest(ctx context.Context, method, path string, body any) (*http.Response, error)
}

// Resource is a REST collection of T, written with drafts of type D.
type Resource[T any, D any] struct {
	req  Requester
	path string
}

// NewResource returns a client for the collection at path.
func NewResource[T any, D any](req Requester, path string) *Resource[T, D] {
	return &Resource[T, D]{req: req, path: path}
}

// List fetches the whole collection in server order.
func (r *Resource[T, D]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Get fetches one entity.
func (r *Resource[T, D]) Get(ctx context.Context, id int64) (T, error) {
	var out T
	err := r.do(ctx, http.MethodGet, r.item(id), nil, &out)
	return out, err
}

// Create posts draft and returns the stored entity.
func (r *Resource[T, D]) Create(ctx context.Context, draft D) (T, error) {
	var out T
	err := r.do(ctx, http.MethodPost, r.path, draft, &out)
	return out, err
}

// Update replaces entity id with draft and returns the stored entity.
func (r *Resource[T, D]) Update(ctx context.Context, id int64, draft D) (T, error) {
	var out T
	err := r.do(ctx, http.MethodPut, r.item(id), draft, &out)
	return out, err
}

// Delete removes entity id.
func (r *Resource[T, D]) Delete(ctx context.Context, id int64) error {
	return r.do(ctx, http.MethodDelete, r.item(id), nil, nil)
}

func (r *Resource[T, D]) item(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

func (r *Resource[T, D]) do(ctx context.Context, method, path string, body, out any) error {
	resp, err := r.req.AuthorizedRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.FromResponse(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(apperrors.ErrRequestFailed, fmt.Errorf("decode %s %s: %w", method, path, err))
	}
	return nil
}

// Users is the /api/users client.
type Users = Resource[models.User, models.UserDraft]

// Expenses is the /api/expenses client.
type Expenses = Resource[models.Expense, models.ExpenseDraft]

// NewUsers returns the users client.
func NewUsers(req Requester) *Users {
	return NewResource[models.User, models.UserDraft](req, UsersPath)
}

// NewExpenses returns the expenses client.
func NewExpenses(req Requester) *Expenses {
	return NewResource[models.Expense, models.ExpenseDraft](req, ExpensesPath)
}

// Categories is the read-only /api/expense-categories client.
type Categories struct {
	res *Resource[models.Category, struct{}]
}

// NewCategories returns the categories client.
func NewCategories(req Requester) *Categories {
	return &Categories{res: NewResource[models.Category, struct{}](req, CategoriesPath)}
}

// List fetches the active categories.
func (c *Categories) List(ctx context.Context) ([]models.Category, error) {
	return c.res.List(ctx)
}

// Get fetches one category.
func (c *Categories) Get(ctx context.Context, id int64) (models.Category, error) {
	return c.res.Get(ctx, id)
}
