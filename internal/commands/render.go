package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/colonyops/todos/internal/core/styles"
	"github.com/colonyops/todos/internal/core/todo"
)

// shortID returns the first segment of a hyphenated id so lists stay
// readable; full ids are shown in detail views.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func dueOrNone(item todo.Item) string {
	if item.DueDate == nil {
		return "none"
	}
	return *item.DueDate
}

// renderList writes items as an aligned list, one item per line.
func renderList(w io.Writer, items []todo.Item) {
	for i, item := range items {
		fmt.Fprintf(w, "%2d. %s  %s  %s  %s\n",
			i+1,
			styles.Subtle.Render(shortID(item.ID)),
			styles.RenderStatus(item.Status),
			styles.RenderPriority(item.Priority),
			item.Title,
		)
	}
}

// renderDetails writes the full field set of one item.
func renderDetails(w io.Writer, item todo.Item) {
	fmt.Fprintln(w, styles.Title.Render(item.Title))
	fmt.Fprintf(w, "%s %s\n", styles.Subtle.Render("id:"), item.ID)
	fmt.Fprintf(w, "%s %s\n", styles.Subtle.Render("status:"), styles.RenderStatus(item.Status))
	fmt.Fprintf(w, "%s %s\n", styles.Subtle.Render("priority:"), styles.RenderPriority(item.Priority))
	fmt.Fprintf(w, "%s %s\n", styles.Subtle.Render("due:"), dueOrNone(item))
	fmt.Fprintf(w, "%s %s\n", styles.Subtle.Render("created:"), item.CreatedAt)
	fmt.Fprintf(w, "%s %s\n", styles.Subtle.Render("updated:"), item.UpdatedAt)
	if item.Details != "" {
		fmt.Fprintln(w, item.Details)
	}
}
