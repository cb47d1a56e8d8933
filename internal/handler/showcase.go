package handler

import (
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/sakif/repo-showcase/internal/presenter"
)

// LoadFailedMessage is the only error text the page shows, whichever
// upstream error kind occurred.
const LoadFailedMessage = "Failed to load repositories. Please try again."

// ShowcaseHandler renders the repository showcase page.
// Templates are parsed once at construction and reused for every request.
type ShowcaseHandler struct {
	templates *template.Template
	finder    RepositoryFinder
	account   string
	logger    *slog.Logger
}

// NewShowcaseHandler parses templates/base.html and templates/showcase.html
// from files (web.FS in production).
//
// base.html defines the page skeleton with a {{template "content" .}}
// placeholder that showcase.html fills in.
func NewShowcaseHandler(files fs.FS, finder RepositoryFinder, account string, logger *slog.Logger) (*ShowcaseHandler, error) {
	tmpl, err := template.ParseFS(files, "templates/base.html", "templates/showcase.html")
	if err != nil {
		return nil, err
	}

	return &ShowcaseHandler{
		templates: tmpl,
		finder:    finder,
		account:   account,
		logger:    logger,
	}, nil
}

// HandleShowcase serves the showcase page for the configured account.
//
// HTTP: GET /
//
// On any fetch error the page still renders with status 200, showing the
// generic notification and no cards.
func (h *ShowcaseHandler) HandleShowcase(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Title":   "My Projects",
		"Account": h.account,
		"Error":   "",
	}

	repos, err := h.finder.FetchRepositories(r.Context(), h.account)
	if err != nil {
		h.logger.Warn("showcase rendered without repositories",
			slog.String("account", h.account),
			slog.String("error", err.Error()),
		)
		data["Error"] = LoadFailedMessage
		data["Cards"] = []presenter.Card{}
	} else {
		data["Cards"] = presenter.NewCards(repos)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := h.templates.ExecuteTemplate(w, "base", data); err != nil {
		h.logger.Error("failed to render template",
			slog.String("error", err.Error()),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
