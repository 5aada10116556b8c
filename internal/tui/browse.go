// Package tui provides the interactive catalog browser.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jlevert/bouquin/internal/catalog"
	"github.com/jlevert/bouquin/internal/openlibrary"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 20
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("254"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("247")).Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type bookItem struct {
	catalog.Book
}

func (i bookItem) Title() string {
	marks := ""
	if i.Read {
		marks += " ✓"
	}
	if i.Favorite {
		marks += " ♥"
	}
	return i.Name + marks
}

func (i bookItem) Description() string {
	stars := strings.Repeat("★", i.Rating) + strings.Repeat("☆", 5-i.Rating)
	return fmt.Sprintf("%s · %s · %s", i.Author, i.Theme, stars)
}

func (i bookItem) FilterValue() string {
	return i.Name + " " + i.Author
}

type viewState int

const (
	stateList viewState = iota
	stateDetail
)

// Model is the bubbletea model for the catalog browser.
type Model struct {
	client   *catalog.Client
	resolver *openlibrary.Resolver

	state viewState
	list  list.Model
	opts  catalog.ListOptions
	err   error

	selected catalog.Book
	cover    openlibrary.Cover
	comments []catalog.Comment
	loading  bool

	// resolveSeq guards against stale asynchronous results: a resolution
	// started for a previously selected book is discarded on arrival.
	resolveSeq int

	quitting bool
}

type booksLoadedMsg struct {
	books []catalog.Book
	err   error
}

type coverResolvedMsg struct {
	seq   int
	cover openlibrary.Cover
	err   error
}

type commentsLoadedMsg struct {
	seq      int
	comments []catalog.Comment
}

// NewModel builds the browser model around the given clients.
func NewModel(client *catalog.Client, resolver *openlibrary.Resolver) Model {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, defaultListWidth, defaultListHeight)
	l.Title = "Bouquin"
	l.SetShowStatusBar(false)

	return Model{
		client:   client,
		resolver: resolver,
		list:     l,
	}
}

func (m Model) loadBooks() tea.Cmd {
	opts := m.opts
	client := m.client
	return func() tea.Msg {
		books, err := client.ListBooks(context.Background(), opts)
		return booksLoadedMsg{books: books, err: err}
	}
}

func (m Model) resolveCover(seq int, book catalog.Book) tea.Cmd {
	resolver := m.resolver
	return func() tea.Msg {
		cover, err := resolver.ResolveCover(context.Background(), book)
		return coverResolvedMsg{seq: seq, cover: cover, err: err}
	}
}

func (m Model) loadComments(seq int, bookID int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		comments, err := client.ListComments(context.Background(), bookID)
		if err != nil {
			// Comments are secondary on the detail view; show none on error.
			comments = nil
		}
		return commentsLoadedMsg{seq: seq, comments: comments}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.loadBooks()
}

// cycleFilter walks a tri-state filter through all → true → false → all.
func cycleFilter(current *bool) *bool {
	switch {
	case current == nil:
		v := true
		return &v
	case *current:
		v := false
		return &v
	default:
		return nil
	}
}

func nextSortKey(key catalog.SortKey) catalog.SortKey {
	switch key {
	case catalog.SortByAuthor:
		return catalog.SortByTheme
	case catalog.SortByTheme:
		return catalog.SortByTitle
	default:
		return catalog.SortByAuthor
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case booksLoadedMsg:
		m.err = msg.err
		items := make([]list.Item, 0, len(msg.books))
		for _, book := range msg.books {
			items = append(items, bookItem{book})
		}
		m.list.SetItems(items)
		return m, nil

	case coverResolvedMsg:
		if msg.seq != m.resolveSeq {
			// The user switched books before this resolution finished.
			return m, nil
		}
		m.loading = false
		if msg.err == nil {
			m.cover = msg.cover
			if msg.cover.Persisted {
				m.selected.Cover = msg.cover.URL
			}
		}
		return m, nil

	case commentsLoadedMsg:
		if msg.seq != m.resolveSeq {
			return m, nil
		}
		m.comments = msg.comments
		return m, nil

	case tea.KeyMsg:
		if m.state == stateDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Don't hijack keys while the fuzzy filter prompt is active.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "r":
		m.opts.Read = cycleFilter(m.opts.Read)
		return m, m.loadBooks()

	case "f":
		m.opts.Favorite = cycleFilter(m.opts.Favorite)
		return m, m.loadBooks()

	case "s":
		m.opts.Sort = nextSortKey(m.opts.Sort)
		return m, m.loadBooks()

	case "o":
		if m.opts.Order == catalog.OrderDesc {
			m.opts.Order = catalog.OrderAsc
		} else {
			m.opts.Order = catalog.OrderDesc
		}
		return m, m.loadBooks()

	case "enter":
		item, ok := m.list.SelectedItem().(bookItem)
		if !ok {
			return m, nil
		}
		m.state = stateDetail
		m.selected = item.Book
		m.cover = openlibrary.Cover{}
		m.comments = nil
		m.loading = true
		m.resolveSeq++
		return m, tea.Batch(
			m.resolveCover(m.resolveSeq, item.Book),
			m.loadComments(m.resolveSeq, item.Book.ID),
		)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc", "backspace":
		m.state = stateList
		// Bump the generation so an in-flight resolution for the book we
		// just left cannot touch the view.
		m.resolveSeq++
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.state == stateDetail {
		return m.detailView()
	}

	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(faintStyle.Render(m.filterStatus() + "  ·  r/f filter · s sort · o order · enter detail · q quit"))
	return b.String()
}

func (m Model) filterStatus() string {
	parts := []string{}
	if m.opts.Read != nil {
		parts = append(parts, fmt.Sprintf("read=%t", *m.opts.Read))
	}
	if m.opts.Favorite != nil {
		parts = append(parts, fmt.Sprintf("favorite=%t", *m.opts.Favorite))
	}
	sort := m.opts.Sort
	if sort == "" {
		sort = catalog.SortByTitle
	}
	order := m.opts.Order
	if order == "" {
		order = catalog.OrderAsc
	}
	parts = append(parts, fmt.Sprintf("sort=%s %s", sort, order))
	return strings.Join(parts, " ")
}

func (m Model) detailView() string {
	book := m.selected
	var b strings.Builder
	b.WriteString(headerStyle.Render(book.Name))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Author:"), book.Author))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Editor:"), book.Editor))
	b.WriteString(fmt.Sprintf("%s %d\n", labelStyle.Render("Year:"), book.Year))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Theme:"), book.Theme))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Rating:"), strings.Repeat("★", book.Rating)+strings.Repeat("☆", 5-book.Rating)))
	b.WriteString(fmt.Sprintf("%s %t   %s %t\n", labelStyle.Render("Read:"), book.Read, labelStyle.Render("Favorite:"), book.Favorite))

	if m.loading {
		b.WriteString(faintStyle.Render("\nResolving cover…\n"))
	} else {
		if m.cover.ISBN != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("ISBN:"), m.cover.ISBN))
		}
		if m.cover.URL != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Cover:"), m.cover.URL))
		} else if book.Cover != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Cover:"), book.Cover))
		} else {
			b.WriteString(faintStyle.Render("No cover found\n"))
		}
	}

	b.WriteString("\n" + headerStyle.Render("Comments") + "\n")
	if len(m.comments) == 0 {
		b.WriteString(faintStyle.Render("No comments for this book.\n"))
	} else {
		for _, comment := range m.comments {
			b.WriteString(fmt.Sprintf("· %s %s\n", comment.Content, faintStyle.Render(comment.DateISO)))
		}
	}

	b.WriteString("\n" + faintStyle.Render("esc back · q quit"))
	return b.String()
}

// Browse runs the interactive catalog browser until the user quits.
func Browse(client *catalog.Client, resolver *openlibrary.Resolver) error {
	_, err := runProgram(NewModel(client, resolver))
	if err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
