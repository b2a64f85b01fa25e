// Package controller implements the client-side list controllers: a cached
// collection per entity, its filtered view, the entity being edited or
// deleted, and the statistics shown above the list.
package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/logger"
	"bizdesk/internal/ui"
)

// ErrNoSelection is returned by DeleteSelected when nothing is selected.
var ErrNoSelection = errors.New("no entity selected")

// Entity is a record with a server-assigned id.
type Entity interface {
	EntityID() int64
}

// Backend is the entity client surface a controller drives.
type Backend[T Entity, D any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, draft D) (T, error)
	Update(ctx context.Context, id int64, draft D) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Criteria narrows the filtered view. Zero fields match everything.
type Criteria struct {
	Text       string
	CategoryID *int64
	// Month is "YYYY-MM".
	Month string
}

// Snapshot is a consistent copy of a controller's state.
type Snapshot[T Entity, S any] struct {
	All         []T
	Filtered    []T
	Criteria    Criteria
	Selected    *T
	Stats       S
	Notice      ui.Notice
	Loading     bool
	Editor      ui.ModalState
	EditorTitle string
	Confirm     ui.ModalState
}

// Config wires the entity-specific parts of a ListController.
type Config[T Entity, D any, S any] struct {
	// Noun names the entity in notices and modal titles, e.g. "Expense".
	Noun    string
	Backend Backend[T, D]
	// Match reports whether e passes c.
	Match func(e T, c Criteria) bool
	// Stats aggregates the whole collection.
	Stats func(all []T, now time.Time) S
	// Prepare normalizes a draft before validation. Optional.
	Prepare func(d *D)
	// Validate checks a draft client-side. Optional.
	Validate func(d D) error
	// Now defaults to time.Now.
	Now func() time.Time
}

// ListController holds one entity view. It is safe for concurrent use;
// network calls are made without holding its lock, so overlapping
// operations race and the last response to resolve wins.
type ListController[T Entity, D any, S any] struct {
	cfg Config[T, D, S]

	mu       sync.Mutex
	all      []T
	filtered []T
	criteria Criteria
	selected *T
	stats    S
	notice   ui.Notice
	inFlight int

	editor  ui.Modal
	confirm ui.Modal
}

// NewListController returns an empty controller.
func NewListController[T Entity, D any, S any](cfg Config[T, D, S]) *ListController[T, D, S] {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	c := &ListController[T, D, S]{cfg: cfg}
	c.recompute()
	return c
}

// Refresh replaces the collection with the server's. On failure the
// collection is left unchanged and a notice is recorded.
func (c *ListController[T, D, S]) Refresh(ctx context.Context) error {
	done := c.begin()
	defer done()

	items, err := c.cfg.Backend.List(ctx)
	if err != nil {
		c.fail(err, "Error loading "+c.plural())
		return err
	}

	c.mu.Lock()
	c.all = append([]T(nil), items...)
	c.recompute()
	c.mu.Unlock()
	return nil
}

// ApplyFilter sets the criteria and recomputes the filtered view.
func (c *ListController[T, D, S]) ApplyFilter(criteria Criteria) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = criteria
	c.recompute()
}

// BeginCreate clears the selection and opens the editor.
func (c *ListController[T, D, S]) BeginCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
	reopen(&c.editor, "Add New "+c.cfg.Noun)
}

// BeginEdit selects entity id and opens the editor. An unknown id is a
// stale reference and leaves everything unchanged.
func (c *ListController[T, D, S]) BeginEdit(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.find(id)
	if !ok {
		return false
	}
	c.selected = &e
	reopen(&c.editor, "Edit "+c.cfg.Noun)
	return true
}

// BeginDelete selects entity id and opens the delete confirmation.
func (c *ListController[T, D, S]) BeginDelete(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.find(id)
	if !ok {
		return false
	}
	c.selected = &e
	reopen(&c.confirm, "Delete "+c.cfg.Noun)
	return true
}

// Cancel clears the selection and closes any open modal.
func (c *ListController[T, D, S]) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
	c.editor.Dismiss()
	c.confirm.Dismiss()
}

// Submit validates draft and then updates the selected entity or, with no
// selection, creates a new one. The stored entity replaces any element
// with the same id, so a concurrent refresh never produces duplicates.
func (c *ListController[T, D, S]) Submit(ctx context.Context, draft D) (T, error) {
	var zero T
	if c.cfg.Prepare != nil {
		c.cfg.Prepare(&draft)
	}
	if c.cfg.Validate != nil {
		if err := c.cfg.Validate(draft); err != nil {
			return zero, err
		}
	}

	c.mu.Lock()
	var editID int64
	editing := c.selected != nil
	if editing {
		editID = (*c.selected).EntityID()
	}
	c.mu.Unlock()

	done := c.begin()
	defer done()

	var (
		saved T
		err   error
	)
	if editing {
		saved, err = c.cfg.Backend.Update(ctx, editID, draft)
	} else {
		saved, err = c.cfg.Backend.Create(ctx, draft)
	}
	if err != nil {
		c.fail(err, "Error saving "+strings.ToLower(c.cfg.Noun))
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.upsert(saved)
	c.recompute()
	verb := "created"
	if editing {
		verb = "updated"
	}
	c.notice = ui.Notice{Level: ui.Success, Message: fmt.Sprintf("%s %s successfully!", c.cfg.Noun, verb)}
	c.selected = nil
	c.editor.Dismiss()
	return saved, nil
}

// DeleteSelected deletes the selected entity and removes it from the
// collection.
func (c *ListController[T, D, S]) DeleteSelected(ctx context.Context) error {
	c.mu.Lock()
	if c.selected == nil {
		c.mu.Unlock()
		return ErrNoSelection
	}
	id := (*c.selected).EntityID()
	c.mu.Unlock()

	done := c.begin()
	defer done()

	if err := c.cfg.Backend.Delete(ctx, id); err != nil {
		c.fail(err, "Error deleting "+strings.ToLower(c.cfg.Noun))
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(id)
	c.recompute()
	c.notice = ui.Notice{Level: ui.Success, Message: c.cfg.Noun + " deleted successfully!"}
	c.selected = nil
	c.confirm.Dismiss()
	c.editor.Dismiss()
	return nil
}

// Snapshot returns a copy of the current state.
func (c *ListController[T, D, S]) Snapshot() Snapshot[T, S] {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Snapshot[T, S]{
		All:         append([]T(nil), c.all...),
		Filtered:    append([]T(nil), c.filtered...),
		Criteria:    c.criteria,
		Stats:       c.stats,
		Notice:      c.notice,
		Loading:     c.inFlight > 0,
		Editor:      c.editor.State(),
		EditorTitle: c.editor.Title(),
		Confirm:     c.confirm.State(),
	}
	if c.selected != nil {
		sel := *c.selected
		s.Selected = &sel
	}
	return s
}

// Find returns the cached entity with the given id.
func (c *ListController[T, D, S]) Find(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.find(id)
}

// Loading reports whether a request is in flight.
func (c *ListController[T, D, S]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight > 0
}

// Notice returns the latest notice.
func (c *ListController[T, D, S]) Notice() ui.Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

// ClearNotice drops the latest notice.
func (c *ListController[T, D, S]) ClearNotice() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = ui.Notice{}
}

func (c *ListController[T, D, S]) begin() func() {
	c.mu.Lock()
	c.inFlight++
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		c.inFlight--
		c.mu.Unlock()
	}
}

func (c *ListController[T, D, S]) fail(err error, generic string) {
	msg := noticeMessage(err, generic)
	logger.Get().Warnw("Operation failed", "entity", c.cfg.Noun, "error", err)

	c.mu.Lock()
	c.notice = ui.Notice{Level: ui.Danger, Message: msg}
	c.mu.Unlock()
}

// noticeMessage prefers the server's own message. Session and transport
// failures keep their taxonomy message; anything else gets generic.
func noticeMessage(err error, generic string) string {
	if msg := apperrors.ServerMessage(err); msg != "" {
		return msg
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch {
		case errors.Is(err, apperrors.ErrSessionExpired),
			errors.Is(err, apperrors.ErrUnauthenticated),
			errors.Is(err, apperrors.ErrForbidden),
			errors.Is(err, apperrors.ErrNetwork):
			return appErr.Message
		}
	}
	return generic
}

// recompute rebuilds the filtered view and statistics. Caller holds mu.
func (c *ListController[T, D, S]) recompute() {
	c.filtered = Filter(c.all, c.criteria, c.cfg.Match)
	if c.cfg.Stats != nil {
		c.stats = c.cfg.Stats(c.all, c.cfg.Now())
	}
}

func (c *ListController[T, D, S]) find(id int64) (T, bool) {
	for _, e := range c.all {
		if e.EntityID() == id {
			return e, true
		}
	}
	var zero T
	return zero, false
}

func (c *ListController[T, D, S]) upsert(e T) {
	for i := range c.all {
		if c.all[i].EntityID() == e.EntityID() {
			c.all[i] = e
			return
		}
	}
	c.all = append(c.all, e)
}

func (c *ListController[T, D, S]) remove(id int64) {
	out := c.all[:0:0]
	for _, e := range c.all {
		if e.EntityID() != id {
			out = append(out, e)
		}
	}
	c.all = out
}

func (c *ListController[T, D, S]) plural() string {
	return strings.ToLower(c.cfg.Noun) + "s"
}

// Filter returns the elements of all that satisfy match, in their original
// order. A nil match keeps everything.
func Filter[T any](all []T, criteria Criteria, match func(T, Criteria) bool) []T {
	out := make([]T, 0, len(all))
	for _, e := range all {
		if match == nil || match(e, criteria) {
			out = append(out, e)
		}
	}
	return out
}

func reopen(m *ui.Modal, title string) {
	switch m.State() {
	case ui.Open:
		m.Dismiss()
	case ui.Closing:
		_ = m.Finish()
	}
	_ = m.Open(title)
}

// containsFold reports whether substr is within s, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
