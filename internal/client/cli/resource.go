package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MoulikGL/basiccrudapp-admin/internal/client/table"
)

// runResource drives one resource screen until the user goes back. The
// same loop serves users and products; everything resource-specific lives
// in the controller's descriptor.
func runResource[T table.Record](ctx context.Context, a *App, ctrl *table.Controller[T]) {
	resource := ctrl.Descriptor().Resource

	ctrl.Load(ctx)
	renderPage(a.out, ctrl)

	for {
		fmt.Fprintf(a.out, "%s [%d/%d]> ", resource, ctrl.Page(), ctrl.TotalPages())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			ctrl.Invalidate()
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: list, reload, next, prev, page N, edit ID, set FIELD VALUE, save, cancel, new, del ID, back")

		case "list":
			renderPage(a.out, ctrl)

		case "reload":
			ctrl.Load(ctx)
			renderPage(a.out, ctrl)

		case "next":
			ctrl.SetPage(ctrl.Page() + 1)
			renderPage(a.out, ctrl)

		case "prev":
			ctrl.SetPage(ctrl.Page() - 1)
			renderPage(a.out, ctrl)

		case "page":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: page <number>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintln(a.out, "Not a page number:", args[0])
				continue
			}
			ctrl.SetPage(n)
			renderPage(a.out, ctrl)

		case "edit":
			beginEdit(a, ctrl, args)

		case "set":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: set <field> <value>")
				continue
			}
			setDraftField(a, ctrl, args[0], strings.Join(args[1:], " "))

		case "save":
			if ctrl.Creating() {
				ctrl.CommitCreate(ctx)
			} else {
				ctrl.Save(ctx)
			}
			renderPage(a.out, ctrl)

		case "cancel":
			ctrl.CancelCreate()
			ctrl.CancelEdit()
			fmt.Fprintln(a.out, "Draft discarded")

		case "new", "create":
			beginCreate(ctx, a, ctrl)
			renderPage(a.out, ctrl)

		case "del", "delete":
			remove(ctx, a, ctrl, args)
			renderPage(a.out, ctrl)

		case "back":
			ctrl.Invalidate()
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func parseID(a *App, args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Not a record id:", args[0])
		return 0, false
	}
	return id, true
}

// beginEdit opens an edit session when the acting identity may edit the
// record. The permission flags only gate the UI here; the server decides
// for real.
func beginEdit[T table.Record](a *App, ctrl *table.Controller[T], args []string) {
	id, ok := parseID(a, args, "Usage: edit <id>")
	if !ok {
		return
	}

	var target *T
	for _, rec := range ctrl.Items() {
		if rec.RecordID() == id {
			target = &rec
			break
		}
	}
	if target == nil {
		fmt.Fprintln(a.out, "No record with id", id)
		return
	}
	if !ctrl.CanEdit(*target) {
		fmt.Fprintln(a.out, "You are not allowed to edit this record")
		return
	}

	ctrl.BeginEdit(id)
	fmt.Fprintf(a.out, "Editing %d: use 'set <field> <value>', then 'save' or 'cancel'\n", id)
}

// setDraftField routes a raw value into whichever draft is open.
func setDraftField[T table.Record](a *App, ctrl *table.Controller[T], field, value string) {
	if ctrl.Creating() {
		ctrl.UpdateCreateDraft(field, value)
		return
	}
	if _, editing := ctrl.EditingID(); !editing {
		fmt.Fprintln(a.out, "Nothing is being edited; use 'edit <id>' or 'new' first")
		return
	}
	ctrl.UpdateDraftField(field, value)
}

// beginCreate walks the user through the fields of a new record, then asks
// whether to save it. Declining keeps nothing.
func beginCreate[T table.Record](ctx context.Context, a *App, ctrl *table.Controller[T]) {
	if !ctrl.CanCreate() {
		fmt.Fprintln(a.out, "Only administrators can create records")
		return
	}

	ctrl.BeginCreate()
	for _, f := range ctrl.Descriptor().Fields {
		label := "Enter " + f.Name
		if f.Required {
			label += " (required)"
		}
		value, err := GetSimpleText(a.reader, label, a.out)
		if err != nil {
			ctrl.CancelCreate()
			return
		}
		ctrl.UpdateCreateDraft(f.Name, value)
	}

	if Confirm(a.reader, "Save new record?", a.out) {
		ctrl.CommitCreate(ctx)
	} else {
		ctrl.CancelCreate()
		fmt.Fprintln(a.out, "Draft discarded")
	}
}

func remove[T table.Record](ctx context.Context, a *App, ctrl *table.Controller[T], args []string) {
	if !ctrl.CanDelete() {
		fmt.Fprintln(a.out, "Only administrators can delete records")
		return
	}
	id, ok := parseID(a, args, "Usage: del <id>")
	if !ok {
		return
	}
	ctrl.Remove(ctx, id)
}
