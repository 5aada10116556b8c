package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/jlevert/bouquin/cmd/books"
	"github.com/jlevert/bouquin/internal/catalog"
	"github.com/jlevert/bouquin/internal/config"
)

var (
	listBooks    = books.ListBooksWithParams
	showBook     = books.ShowBookWithParams
	addBook      = books.AddBookWithParams
	updateBook   = books.UpdateBookWithParams
	deleteBook   = books.DeleteBookWithParams
	rateBook     = books.RateBookWithParams
	listComments = books.ListCommentsWithParams
	addComment   = books.AddCommentWithParams
	showStats    = books.StatsWithParams
	syncCovers   = books.SyncCoversWithParams
	runExport    = books.ExportWithParams
	runBrowse    = books.BrowseWithParams
)

// CLI represents the complete command structure for the bouquin application
type CLI struct {
	// Global flags
	Overwrite bool   `help:"Overwrite existing markdown files when exporting"`
	APIURL    string `name:"api-url" help:"Base URL of the book catalog API"`

	List     ListCmd     `cmd:"" help:"List books in the catalog"`
	Show     ShowCmd     `cmd:"" help:"Show a single book with its cover and comments"`
	Add      AddCmd      `cmd:"" help:"Add a book to the catalog"`
	Update   UpdateCmd   `cmd:"" help:"Update fields of an existing book"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a book from the catalog"`
	Rate     RateCmd     `cmd:"" help:"Set a book's rating"`
	Comments CommentsCmd `cmd:"" help:"Manage comments on a book"`
	Stats    StatsCmd    `cmd:"" help:"Show reading statistics"`
	Covers   CoversCmd   `cmd:"" help:"Find and save covers for books that have none"`
	Export   ExportCmd   `cmd:"" help:"Export the catalog to markdown notes"`
	Browse   BrowseCmd   `cmd:"" help:"Browse the catalog interactively"`
}

// ListCmd represents the list command
type ListCmd struct {
	Search   string `short:"s" help:"Filter by title or author substring"`
	Read     *bool  `help:"Filter by read status (--read or --read=false)"`
	Favorite *bool  `help:"Filter by favorite status (--favorite or --favorite=false)"`
	Sort     string `help:"Sort key" enum:"title,author,theme" default:"title"`
	Order    string `help:"Sort order" enum:"asc,desc" default:"asc"`
}

// ShowCmd represents the show command
type ShowCmd struct {
	ID int `arg:"" help:"Book ID"`
}

// AddCmd represents the add command
type AddCmd struct {
	Name     string `short:"n" required:"" help:"Book title"`
	Author   string `short:"a" required:"" help:"Author name"`
	Editor   string `help:"Publisher"`
	Year     int    `help:"Publication year"`
	Theme    string `help:"Genre (unknown values fall back to Classique)"`
	Read     bool   `help:"Mark as read"`
	Favorite bool   `help:"Mark as favorite"`
	Rating   int    `help:"Rating from 0 to 5"`
	Cover    string `help:"Cover image URL"`
}

// UpdateCmd represents the update command
type UpdateCmd struct {
	ID       int     `arg:"" help:"Book ID"`
	Name     *string `short:"n" help:"Book title"`
	Author   *string `short:"a" help:"Author name"`
	Editor   *string `help:"Publisher"`
	Year     *int    `help:"Publication year"`
	Theme    *string `help:"Genre"`
	Read     *bool   `help:"Read status"`
	Favorite *bool   `help:"Favorite status"`
	Rating   *int    `help:"Rating from 0 to 5"`
	Cover    *string `help:"Cover image URL"`
}

// DeleteCmd represents the delete command
type DeleteCmd struct {
	ID int `arg:"" help:"Book ID"`
}

// RateCmd represents the rate command
type RateCmd struct {
	ID     int `arg:"" help:"Book ID"`
	Rating int `arg:"" help:"Rating from 0 to 5"`
}

// CommentsCmd represents the comments command and its subcommands
type CommentsCmd struct {
	List CommentsListCmd `cmd:"" help:"List comments on a book"`
	Add  CommentsAddCmd  `cmd:"" help:"Add a comment to a book"`
}

// CommentsListCmd lists the comments attached to a book
type CommentsListCmd struct {
	ID int `arg:"" help:"Book ID"`
}

// CommentsAddCmd adds a comment to a book
type CommentsAddCmd struct {
	ID      int    `arg:"" help:"Book ID"`
	Content string `arg:"" help:"Comment text"`
}

// StatsCmd represents the stats command
type StatsCmd struct{}

// CoversCmd represents the covers command
type CoversCmd struct{}

// ExportCmd represents the export command
type ExportCmd struct {
	Output      string `short:"o" help:"Subdirectory under markdown output directory" default:"books"`
	JSON        bool   `help:"Write data to JSON format"`
	JSONOutput  string `help:"Path to JSON output file (defaults to json/books.json)"`
	Datasette   bool   `help:"Write a Datasette-ready SQLite database"`
	DatasetteDB string `help:"Path to SQLite database file" default:"./bouquin.db"`
}

// BrowseCmd represents the browse command
type BrowseCmd struct{}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("bouquin"),
		kong.Description("A command line companion for a personal book catalog."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("catalog.baseurl", catalog.DefaultBaseURL)
	viper.SetDefault("openlibrary.baseurl", "https://openlibrary.org")
	viper.SetDefault("covers.baseurl", "https://covers.openlibrary.org")
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("OverwriteFiles", false)

	viper.AutomaticEnv()
	if err := viper.BindEnv("catalog.baseurl", "BOUQUIN_API_URL"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	config.SetOverwriteFiles(cli.Overwrite)
	if cli.APIURL != "" {
		config.SetCatalogBaseURL(cli.APIURL)
	}
}

// Run methods for each command

func (l *ListCmd) Run() error {
	return listBooks(context.Background(), catalog.ListOptions{
		Search:   l.Search,
		Read:     l.Read,
		Favorite: l.Favorite,
		Sort:     catalog.SortKey(l.Sort),
		Order:    catalog.SortOrder(l.Order),
	})
}

func (s *ShowCmd) Run() error {
	return showBook(context.Background(), s.ID)
}

func (a *AddCmd) Run() error {
	return addBook(context.Background(), catalog.BookDraft{
		Name:     a.Name,
		Author:   a.Author,
		Editor:   a.Editor,
		Year:     a.Year,
		Theme:    catalog.NormalizeTheme(a.Theme),
		Read:     a.Read,
		Favorite: a.Favorite,
		Rating:   a.Rating,
		Cover:    a.Cover,
	})
}

func (u *UpdateCmd) Run() error {
	update := catalog.BookUpdate{
		Name:     u.Name,
		Author:   u.Author,
		Editor:   u.Editor,
		Year:     u.Year,
		Read:     u.Read,
		Favorite: u.Favorite,
		Rating:   u.Rating,
		Cover:    u.Cover,
	}
	if u.Theme != nil {
		theme := catalog.NormalizeTheme(*u.Theme)
		update.Theme = &theme
	}
	return updateBook(context.Background(), u.ID, update)
}

func (d *DeleteCmd) Run() error {
	return deleteBook(context.Background(), d.ID)
}

func (r *RateCmd) Run() error {
	return rateBook(context.Background(), r.ID, r.Rating)
}

func (c *CommentsListCmd) Run() error {
	return listComments(context.Background(), c.ID)
}

func (c *CommentsAddCmd) Run() error {
	return addComment(context.Background(), c.ID, c.Content)
}

func (s *StatsCmd) Run() error {
	return showStats(context.Background())
}

func (c *CoversCmd) Run() error {
	return syncCovers(context.Background())
}

func (e *ExportCmd) Run() error {
	return runExport(context.Background(), books.ExportOptions{
		OutputDir:   e.Output,
		JSON:        e.JSON,
		JSONOutput:  e.JSONOutput,
		Datasette:   e.Datasette,
		DatasetteDB: e.DatasetteDB,
	})
}

func (b *BrowseCmd) Run() error {
	return runBrowse()
}

func initLogging() {
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	slog.SetDefault(slog.New(handler))
}
