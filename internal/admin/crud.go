package admin

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotConfirmed is returned when a destructive action arrives
	// without its explicit confirmation.
	ErrNotConfirmed = errors.New("confirmation required")
	// ErrSaveFailed is returned when the repository reported a sentinel
	// failure; the open form keeps the user's input.
	ErrSaveFailed = errors.New("save failed")
	// ErrSaveInFlight guards against overlapping saves to one entity type.
	ErrSaveInFlight = errors.New("a save is already in progress")
)

// RemoteOps are the repository closures a remote-mode list works against.
type RemoteOps[T any] struct {
	FetchAll func(ctx context.Context) []T
	Upsert   func(ctx context.Context, item T) *T
	Delete   func(ctx context.Context, id string) bool
}

// ListController drives the create/edit/delete workflow for one collection.
// In remote mode every action goes through the repository and the
// authoritative list is re-fetched after each write. In local-draft mode
// actions only mutate an in-memory draft slice; persistence is deferred to
// the batch sync.
//
// Draft records are told apart from persisted ones by membership in the
// controller's draft-id set, never by inspecting the id string itself.
type ListController[T any] struct {
	getID func(T) string
	setID func(*T, string)

	remote *RemoteOps[T]

	draft    *[]T
	draftIDs map[string]bool

	form    *T
	editing bool
}

func NewRemoteList[T any](getID func(T) string, setID func(*T, string), ops RemoteOps[T]) *ListController[T] {
	return &ListController[T]{getID: getID, setID: setID, remote: &ops}
}

func NewLocalList[T any](getID func(T) string, setID func(*T, string), draft *[]T) *ListController[T] {
	return &ListController[T]{
		getID:    getID,
		setID:    setID,
		draft:    draft,
		draftIDs: map[string]bool{},
	}
}

// BeginCreate opens the form bound to an empty record. The record has no id
// yet; Submit assigns one.
func (c *ListController[T]) BeginCreate() *T {
	var zero T
	c.form = &zero
	c.editing = true
	return c.form
}

// BeginEdit opens the form pre-populated with a copy of item.
func (c *ListController[T]) BeginEdit(item T) *T {
	copied := item
	c.form = &copied
	c.editing = true
	return c.form
}

func (c *ListController[T]) Editing() bool {
	return c.editing
}

func (c *ListController[T]) Form() *T {
	return c.form
}

func (c *ListController[T]) CloseForm() {
	c.form = nil
	c.editing = false
}

// IsDraftID reports whether id was minted by this controller and has not
// been persisted.
func (c *ListController[T]) IsDraftID(id string) bool {
	return c.draftIDs[id]
}

// Items returns the current list: the local draft in draft mode, a fresh
// repository read in remote mode.
func (c *ListController[T]) Items(ctx context.Context) []T {
	if c.remote != nil {
		return c.remote.FetchAll(ctx)
	}
	return *c.draft
}

// SetItems replaces the local draft with canonical rows, clearing the
// draft-id set. Used after a batch sync reload.
func (c *ListController[T]) SetItems(items []T) {
	if c.draft == nil {
		return
	}
	*c.draft = items
	c.draftIDs = map[string]bool{}
}

// Submit persists the form. Remote mode: upsert then re-fetch; a sentinel
// failure keeps the form open. Local-draft mode: a record without a real id
// is appended under a fresh draft id, an existing record is replaced in
// place; local submits cannot fail.
func (c *ListController[T]) Submit(ctx context.Context, form T) ([]T, error) {
	if c.remote != nil {
		if saved := c.remote.Upsert(ctx, form); saved == nil {
			return nil, ErrSaveFailed
		}
		c.CloseForm()
		return c.remote.FetchAll(ctx), nil
	}

	id := c.getID(form)
	if id == "" {
		fresh := uuid.NewString()
		c.setID(&form, fresh)
		c.draftIDs[fresh] = true
		*c.draft = append(*c.draft, form)
	} else {
		replaced := false
		for i, item := range *c.draft {
			if c.getID(item) == id {
				(*c.draft)[i] = form
				replaced = true
				break
			}
		}
		if !replaced {
			if c.draftIDs[id] {
				// stale draft id from a removed record; re-mint
				delete(c.draftIDs, id)
				fresh := uuid.NewString()
				c.setID(&form, fresh)
				c.draftIDs[fresh] = true
			}
			*c.draft = append(*c.draft, form)
		}
	}
	c.CloseForm()
	return *c.draft, nil
}

// Remove deletes by id after explicit confirmation.
func (c *ListController[T]) Remove(ctx context.Context, id string, confirmed bool) ([]T, error) {
	if !confirmed {
		return nil, ErrNotConfirmed
	}
	if c.remote != nil {
		if !c.remote.Delete(ctx, id) {
			return nil, ErrSaveFailed
		}
		return c.remote.FetchAll(ctx), nil
	}
	kept := (*c.draft)[:0]
	for _, item := range *c.draft {
		if c.getID(item) != id {
			kept = append(kept, item)
		}
	}
	*c.draft = kept
	delete(c.draftIDs, id)
	return *c.draft, nil
}
