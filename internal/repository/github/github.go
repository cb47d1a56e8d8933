// Package github implements repository.Directory on top of the GitHub REST API.
//
// WHY go-github?
// The API surface we need is tiny (two GET endpoints), but go-github already
// knows how to build requests against a configurable base URL, classify
// response statuses, parse GitHub's error bodies and map repository JSON
// onto typed structs. What it does NOT do is speak
// our error vocabulary, so this package's main job is TRANSLATION:
//
//	go-github result                        → our error
//	---------------------------------------   ----------------------------
//	no *Response at all (dial, DNS, TLS)    → apperror.NetworkError
//	*Response with a non-2xx status         → apperror.RemoteServiceError
//	*Response with 2xx but a decode error   → apperror.MalformedResponseError
//	202 reported as *gh.AcceptedError       → success (body kept)
//
// No go-github type leaves this package.
package github

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v80/github"

	"github.com/sakif/repo-showcase/internal/apperror"
	"github.com/sakif/repo-showcase/internal/repository"
)

// DefaultBaseURL is the public GitHub REST API root.
const DefaultBaseURL = "https://api.github.com/"

// COMPILE-TIME INTERFACE CHECK: *Client must satisfy repository.Directory.
var _ repository.Directory = (*Client)(nil)

// Client is a read-only, unauthenticated GitHub API client.
type Client struct {
	gh     *gh.Client
	logger *slog.Logger
}

// New creates a Client talking to baseURL (DefaultBaseURL when empty).
//
// httpClient may be nil, in which case go-github uses a plain http.Client
// with no timeout. Tests pass httptest.Server.Client() and the server URL.
func New(baseURL string, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("github: parsing base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("github: base URL %q must be absolute", baseURL)
	}
	// go-github resolves relative paths ("users/x/repos") against BaseURL,
	// which only works when the path ends in a slash.
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	client := gh.NewClient(httpClient)
	client.BaseURL = u

	return &Client{gh: client, logger: logger}, nil
}

// translateError maps a go-github failure onto the apperror taxonomy.
// resp is whatever go-github returned alongside err (possibly nil).
func translateError(op string, resp *gh.Response, err error) error {
	if resp == nil || resp.Response == nil {
		return apperror.Network(op, err)
	}

	if code := resp.StatusCode; code < 200 || code > 299 {
		message := ""
		var ghErr *gh.ErrorResponse
		if errors.As(err, &ghErr) {
			message = ghErr.Message
		}
		return apperror.RemoteService(code, message)
	}

	// A success status with an error can only come from decoding the body.
	return apperror.Malformed(fmt.Errorf("%s: %w", op, err))
}
