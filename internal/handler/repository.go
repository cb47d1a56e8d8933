package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// RepositoryHandler serves the JSON API over the repository service.
type RepositoryHandler struct {
	finder         RepositoryFinder
	defaultAccount string
	logger         *slog.Logger
}

// NewRepositoryHandler creates a new RepositoryHandler. defaultAccount is
// used when a request does not name an account.
func NewRepositoryHandler(finder RepositoryFinder, defaultAccount string, logger *slog.Logger) *RepositoryHandler {
	return &RepositoryHandler{
		finder:         finder,
		defaultAccount: defaultAccount,
		logger:         logger,
	}
}

// AccountResponse is the body of GET /api/accounts/{account}.
type AccountResponse struct {
	Account string `json:"account"`
	Exists  bool   `json:"exists"`
}

// HandleList returns the curated repositories of an account.
//
// HTTP: GET /api/repositories?account=weo-soft
//
// RESPONSE FORMAT:
//
//	[
//	  {"id":1,"name":"gherkin","fullName":"cucumber/gherkin","starCount":100,...},
//	  ...
//	]
//
// An empty result is [] (never null).
func (h *RepositoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	account := strings.TrimSpace(r.URL.Query().Get("account"))
	if account == "" {
		account = h.defaultAccount
	}

	repos, err := h.finder.FetchRepositories(r.Context(), account)
	if err != nil {
		h.logger.Warn("listing repositories failed",
			slog.String("account", account),
			slog.String("error", err.Error()),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, repos)
}

// HandleAccount reports whether an account exists.
//
// HTTP: GET /api/accounts/{account}
//
// Always 200: "does not exist" and "could not tell" are both exists=false.
func (h *RepositoryHandler) HandleAccount(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")

	writeJSON(w, http.StatusOK, AccountResponse{
		Account: account,
		Exists:  h.finder.AccountExists(r.Context(), account),
	})
}
