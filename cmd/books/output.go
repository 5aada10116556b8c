package books

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jlevert/bouquin/internal/catalog"
	"github.com/jlevert/bouquin/internal/openlibrary"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("254"))
	themeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("247")).Faint(true)
	ratingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	markStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
)

func ratingStars(rating int) string {
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func bookMarks(book catalog.Book) string {
	marks := make([]string, 0, 2)
	if book.Read {
		marks = append(marks, "read")
	}
	if book.Favorite {
		marks = append(marks, "favorite")
	}
	if len(marks) == 0 {
		return ""
	}
	return markStyle.Render("[" + strings.Join(marks, ", ") + "]")
}

func renderBookList(w io.Writer, books []catalog.Book) {
	if len(books) == 0 {
		fmt.Fprintln(w, "No books found.")
		return
	}
	for _, book := range books {
		line := fmt.Sprintf("%4d  %s — %s  %s %s %s",
			book.ID,
			titleStyle.Render(book.Name),
			book.Author,
			themeStyle.Render(string(book.Theme)),
			ratingStyle.Render(ratingStars(book.Rating)),
			bookMarks(book),
		)
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	fmt.Fprintln(w, metaStyle.Render(fmt.Sprintf("%d book(s)", len(books))))
}

func renderBookDetail(w io.Writer, book catalog.Book, isbn string, cover openlibrary.Cover) {
	fmt.Fprintln(w, titleStyle.Render(book.Name))
	fmt.Fprintf(w, "  Author:   %s\n", book.Author)
	fmt.Fprintf(w, "  Editor:   %s\n", book.Editor)
	fmt.Fprintf(w, "  Year:     %d\n", book.Year)
	fmt.Fprintf(w, "  Theme:    %s\n", themeStyle.Render(string(book.Theme)))
	fmt.Fprintf(w, "  Rating:   %s\n", ratingStyle.Render(ratingStars(book.Rating)))
	fmt.Fprintf(w, "  Read:     %t\n", book.Read)
	fmt.Fprintf(w, "  Favorite: %t\n", book.Favorite)
	if isbn != "" {
		fmt.Fprintf(w, "  ISBN:     %s\n", isbn)
	}
	if cover.URL != "" {
		fmt.Fprintf(w, "  Cover:    %s\n", cover.URL)
		if cover.Persisted {
			fmt.Fprintln(w, metaStyle.Render("  (cover saved to catalog)"))
		}
	} else {
		fmt.Fprintln(w, metaStyle.Render("  Cover:    not found"))
	}
}

func renderComments(w io.Writer, comments []catalog.Comment) {
	fmt.Fprintln(w, titleStyle.Render("Comments"))
	if len(comments) == 0 {
		fmt.Fprintln(w, metaStyle.Render("  No comments for this book."))
		return
	}
	for _, comment := range comments {
		fmt.Fprintf(w, "  %s %s\n", comment.Content, metaStyle.Render(comment.DateISO))
	}
}

func renderStats(w io.Writer, stats catalog.Statistics) {
	total := stats.ReadCount + stats.UnreadCount
	fmt.Fprintln(w, titleStyle.Render("Reading statistics"))
	fmt.Fprintf(w, "  Books:          %d\n", total)
	fmt.Fprintf(w, "  Read:           %d\n", stats.ReadCount)
	fmt.Fprintf(w, "  Unread:         %d\n", stats.UnreadCount)
	if stats.AverageRating != nil {
		fmt.Fprintf(w, "  Average rating: %.1f/5\n", *stats.AverageRating)
	} else {
		fmt.Fprintln(w, "  Average rating: –")
	}
}
