package table

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MoulikGL/basiccrudapp-admin/internal/client/api"
	"github.com/MoulikGL/basiccrudapp-admin/internal/client/notify"
	"github.com/MoulikGL/basiccrudapp-admin/internal/client/session"
	"github.com/MoulikGL/basiccrudapp-admin/internal/common"
	"github.com/MoulikGL/basiccrudapp-admin/internal/logging"
)

// PageSize is the fixed number of rows per page.
const PageSize = 5

// ConfirmFunc is the synchronous yes/no gate used before destructive
// operations. It lives outside the controller: the CLI asks on the
// terminal, tests stub it.
type ConfirmFunc func(prompt string) bool

// Controller drives one resource collection: load, paginate, inline-edit,
// create, delete. It is bound to a single screen instance and, like the
// screen, is driven from one goroutine; it is not safe for concurrent use.
//
// The controller trusts the server, not itself: after every successful
// mutation it reloads the collection instead of patching local state.
type Controller[T Record] struct {
	desc    Descriptor[T]
	client  *api.Client
	sess    *session.Store
	notify  notify.Notifier
	confirm ConfirmFunc
	log     logging.Logger

	items       []T
	page        int
	editing     bool
	editingID   int64
	draft       map[string]string
	creating    bool
	createDraft map[string]string

	// loadMu guards only the in-flight bookkeeping: Invalidate and a
	// coalesced Load may arrive while another Load is blocked on the
	// network.
	loadMu  sync.Mutex
	loading bool
	loadGen uint64
}

// NewController builds a controller for one resource.
func NewController[T Record](
	desc Descriptor[T],
	client *api.Client,
	sess *session.Store,
	notifier notify.Notifier,
	confirm ConfirmFunc,
	log logging.Logger,
) *Controller[T] {
	return &Controller[T]{
		desc:    desc,
		client:  client,
		sess:    sess,
		notify:  notifier,
		confirm: confirm,
		log:     log.With("resource", desc.Resource),
	}
}

// Load fetches the whole collection. Any failure resets the collection to
// empty and raises one failure notification; partial content is never kept.
// A Load issued while another is outstanding is a no-op, and a response
// that has been superseded by a newer Load is discarded.
func (c *Controller[T]) Load(ctx context.Context) {
	gen, ok := c.beginLoad()
	if !ok {
		c.log.Debug(ctx, "load already in flight, coalescing")
		return
	}

	items, err := api.List[T](ctx, c.client, c.desc.Resource, c.sess.Token())
	if !c.endLoad(gen) {
		c.log.Debug(ctx, "discarding stale load response")
		return
	}

	if err != nil {
		c.items = nil
		c.clampPage()
		c.log.Error(ctx, "load failed", "error", err)
		c.notify.Error(fmt.Sprintf("Failed to load %ss", c.desc.Resource))
		return
	}

	c.items = items
	c.clampPage()
}

func (c *Controller[T]) beginLoad() (uint64, bool) {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()
	if c.loading {
		return 0, false
	}
	c.loading = true
	c.loadGen++
	return c.loadGen, true
}

// endLoad reports whether the load identified by gen is still current.
func (c *Controller[T]) endLoad(gen uint64) bool {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()
	c.loading = false
	return gen == c.loadGen
}

// Invalidate marks any in-flight load as stale so its response will be
// dropped. Screens call it when they are left while a request is pending.
func (c *Controller[T]) Invalidate() {
	c.loadMu.Lock()
	c.loadGen++
	c.loadMu.Unlock()
}

// Items returns the full collection in server order.
func (c *Controller[T]) Items() []T { return c.items }

// Descriptor exposes the resource parameterization, mainly so the view
// layer can render column headers and prompt for known fields.
func (c *Controller[T]) Descriptor() Descriptor[T] { return c.desc }

// DraftValue returns the current draft value of a field during an edit
// session, falling back to the create draft when composing a new record.
func (c *Controller[T]) DraftValue(field string) (string, bool) {
	if c.editing {
		v, ok := c.draft[field]
		return v, ok
	}
	if c.creating {
		v, ok := c.createDraft[field]
		return v, ok
	}
	return "", false
}

// Page returns the current 1-based page index.
func (c *Controller[T]) Page() int {
	if c.page < 1 {
		return 1
	}
	return c.page
}

// TotalPages is never less than 1, even for an empty collection.
func (c *Controller[T]) TotalPages() int {
	n := (len(c.items) + PageSize - 1) / PageSize
	if n < 1 {
		return 1
	}
	return n
}

// PageItems returns the slice of items visible on the current page.
func (c *Controller[T]) PageItems() []T {
	start := (c.Page() - 1) * PageSize
	if start >= len(c.items) {
		return nil
	}
	end := start + PageSize
	if end > len(c.items) {
		end = len(c.items)
	}
	return c.items[start:end]
}

// SetPage clamps n into [1, TotalPages] and applies it.
func (c *Controller[T]) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	if total := c.TotalPages(); n > total {
		n = total
	}
	c.page = n
}

func (c *Controller[T]) clampPage() {
	c.SetPage(c.Page())
}

// EditingID returns the id of the record being edited, if any.
func (c *Controller[T]) EditingID() (int64, bool) {
	return c.editingID, c.editing
}

// Creating reports whether a create draft is open.
func (c *Controller[T]) Creating() bool { return c.creating }

func (c *Controller[T]) find(id int64) (T, bool) {
	for _, it := range c.items {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// BeginEdit opens an edit session for the given record. It is a silent
// no-op when another record is already being edited or the id is not in
// the collection. The draft starts as a copy of the record's fields.
func (c *Controller[T]) BeginEdit(id int64) {
	if c.editing {
		return
	}
	rec, ok := c.find(id)
	if !ok {
		return
	}

	c.draft = make(map[string]string, len(c.desc.Fields))
	for i := range c.desc.Fields {
		f := &c.desc.Fields[i]
		c.draft[f.Name] = f.Get(&rec)
	}
	c.editing = true
	c.editingID = id
}

// UpdateDraftField records an in-progress edit. No validation happens here.
func (c *Controller[T]) UpdateDraftField(field, value string) {
	if !c.editing {
		return
	}
	c.draft[field] = value
}

// CancelEdit discards the draft without any network call.
func (c *Controller[T]) CancelEdit() {
	c.editing = false
	c.editingID = 0
	c.draft = nil
}

// Save validates the draft, merges it over the original record and issues
// an update. The edit session always ends after the attempt, success or
// failure. On success the collection is reloaded from the server; local
// state is never mutated optimistically.
func (c *Controller[T]) Save(ctx context.Context) {
	if !c.editing {
		return
	}

	id := c.editingID
	draft := c.draft
	c.CancelEdit()

	base, ok := c.find(id)
	if !ok {
		c.notify.Error("Record is no longer present")
		return
	}

	merged, err := c.desc.apply(base, draft)
	if err == nil {
		err = c.desc.validate(merged)
	}
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			c.notify.Error(validationMessage(err))
			return
		}
		c.notify.Error(err.Error())
		return
	}

	if err := c.client.Update(ctx, c.desc.Resource, c.sess.Token(), id, merged); err != nil {
		c.log.Error(ctx, "update failed", "id", id, "error", err)
		c.notify.Error(fmt.Sprintf("Failed to update %s", c.desc.Resource))
		return
	}

	c.notify.Success(fmt.Sprintf("%s updated", titleCase(c.desc.Resource)))
	c.Load(ctx)
}

// BeginCreate opens a create draft. A silent no-op when one is already open.
func (c *Controller[T]) BeginCreate() {
	if c.creating {
		return
	}
	c.creating = true
	c.createDraft = make(map[string]string, len(c.desc.Fields))
}

// UpdateCreateDraft records an in-progress field of the new record.
func (c *Controller[T]) UpdateCreateDraft(field, value string) {
	if !c.creating {
		return
	}
	c.createDraft[field] = value
}

// CancelCreate discards the create draft without any network call.
func (c *Controller[T]) CancelCreate() {
	c.creating = false
	c.createDraft = nil
}

// CommitCreate validates the draft and issues a create request. The draft
// is always cleared after the attempt regardless of outcome; on success the
// collection is reloaded.
func (c *Controller[T]) CommitCreate(ctx context.Context) {
	if !c.creating {
		return
	}

	draft := c.createDraft
	c.CancelCreate()

	var zero T
	rec, err := c.desc.apply(zero, draft)
	if err == nil {
		err = c.desc.validate(rec)
	}
	if err != nil {
		c.notify.Error(validationMessage(err))
		return
	}

	if err := c.client.Create(ctx, c.desc.Resource, c.sess.Token(), rec); err != nil {
		c.log.Error(ctx, "create failed", "error", err)
		c.notify.Error(fmt.Sprintf("Failed to create %s", c.desc.Resource))
		return
	}

	c.notify.Success(fmt.Sprintf("%s created", titleCase(c.desc.Resource)))
	c.Load(ctx)
}

// Remove deletes a record after the external confirmation gate approves.
// On failure the record stays in local state; only a reload decides
// whether it is gone.
func (c *Controller[T]) Remove(ctx context.Context, id int64) {
	if !c.confirm(fmt.Sprintf("Delete this %s?", c.desc.Resource)) {
		return
	}

	if err := c.client.Delete(ctx, c.desc.Resource, c.sess.Token(), id); err != nil {
		c.log.Error(ctx, "delete failed", "id", id, "error", err)
		c.notify.Error(fmt.Sprintf("Failed to delete %s", c.desc.Resource))
		return
	}

	c.notify.Success(fmt.Sprintf("%s deleted", titleCase(c.desc.Resource)))
	c.Load(ctx)
}

// CanEdit reports whether the acting identity may edit the record: its
// owner, or an admin. The flags gate the UI only; the server re-checks.
func (c *Controller[T]) CanEdit(rec T) bool {
	identity, _, ok := c.sess.Current()
	if !ok {
		return false
	}
	if identity.IsAdmin {
		return true
	}
	if owner, has := c.desc.OwnerID(&rec); has {
		return owner == identity.ID
	}
	return false
}

// CanCreate reports whether the acting identity may create records.
func (c *Controller[T]) CanCreate() bool {
	identity, _, ok := c.sess.Current()
	return ok && identity.IsAdmin
}

// CanDelete reports whether the acting identity may delete records.
func (c *Controller[T]) CanDelete() bool {
	identity, _, ok := c.sess.Current()
	return ok && identity.IsAdmin
}
