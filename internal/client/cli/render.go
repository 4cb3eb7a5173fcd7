package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MoulikGL/basiccrudapp-admin/internal/client/table"
)

// renderPage prints the current page of the collection as a table, one
// column per descriptor field plus the id. The row under edit shows its
// draft values marked with '*'.
func renderPage[T table.Record](w io.Writer, ctrl *table.Controller[T]) {
	desc := ctrl.Descriptor()
	editingID, editing := ctrl.EditingID()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	headers := make([]string, 0, len(desc.Fields)+1)
	headers = append(headers, "ID")
	for _, f := range desc.Fields {
		headers = append(headers, f.Name)
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, rec := range ctrl.PageItems() {
		rec := rec
		cells := make([]string, 0, len(desc.Fields)+1)
		cells = append(cells, fmt.Sprintf("%d", rec.RecordID()))
		for _, f := range desc.Fields {
			value := f.Get(&rec)
			if editing && rec.RecordID() == editingID {
				if draft, ok := ctrl.DraftValue(f.Name); ok && draft != value {
					value = draft + "*"
				}
			}
			cells = append(cells, value)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()

	fmt.Fprintf(w, "page %d of %d (%d records)\n", ctrl.Page(), ctrl.TotalPages(), len(ctrl.Items()))
}
