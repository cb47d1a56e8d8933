package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	gh "github.com/google/go-github/v80/github"

	"github.com/sakif/repo-showcase/internal/apperror"
	"github.com/sakif/repo-showcase/internal/model"
	"github.com/sakif/repo-showcase/internal/repository"
)

// ListAccountRepositories fetches ONE page of an account's public repositories.
//
// HTTP: GET {base}/users/{account}/repos?sort={opts.Sort}&per_page={opts.PerPage}
//
// No loop over resp.NextPage: one call is one request is one page.
//
// The body is decoded here rather than by go-github so that a body that is
// not a JSON array (including an empty body or a bare null) is reported as
// a MalformedResponseError instead of an empty list.
func (c *Client) ListAccountRepositories(ctx context.Context, account string, opts repository.ListOptions) ([]model.Repository, error) {
	op := fmt.Sprintf("github: listing repositories for %s", account)

	query := url.Values{}
	if opts.Sort != "" {
		query.Set("sort", opts.Sort)
	}
	if opts.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(opts.PerPage))
	}
	path := fmt.Sprintf("users/%s/repos", account)
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	req, err := c.gh.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: building request: %w", op, err)
	}

	var raw json.RawMessage
	if err := c.send(ctx, op, req, &raw); err != nil {
		return nil, err
	}

	body := bytes.TrimSpace(raw)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, apperror.Malformed(fmt.Errorf("%s: body is not a JSON array", op))
	}

	var repos []*gh.Repository
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, apperror.Malformed(fmt.Errorf("%s: %w", op, err))
	}

	result := make([]model.Repository, 0, len(repos))
	for i, r := range repos {
		// A JSON null inside the array decodes to a nil pointer.
		if r == nil {
			return nil, apperror.Malformed(fmt.Errorf("%s: repository at index %d is null", op, i))
		}
		result = append(result, toModel(r))
	}

	c.logger.Debug("github repositories listed",
		slog.String("account", account),
		slog.Int("count", len(result)),
	)

	return result, nil
}

// GetAccount probes GET {base}/users/{account}.
//
// The request is sent with a nil decode target, so only the status code
// matters: any 2xx (202 included) with any body counts as success.
func (c *Client) GetAccount(ctx context.Context, account string) error {
	op := fmt.Sprintf("github: getting account %s", account)

	req, err := c.gh.NewRequest(http.MethodGet, fmt.Sprintf("users/%s", account), nil)
	if err != nil {
		return fmt.Errorf("%s: building request: %w", op, err)
	}

	return c.send(ctx, op, req, nil)
}

// send performs exactly one round trip for req.
//
// go-github's client-side rate-limit guard is bypassed: after a response
// reporting zero remaining quota it would otherwise answer the next call
// with a synthetic 403 without contacting the server.
//
// raw, when non-nil, receives the undecoded body. go-github reports a 202
// as *gh.AcceptedError carrying the body; it is a success status, so the
// body is handed back like any other.
func (c *Client) send(ctx context.Context, op string, req *http.Request, raw *json.RawMessage) error {
	ctx = context.WithValue(ctx, gh.BypassRateLimitCheck, true)

	var target any
	if raw != nil {
		target = raw
	}

	resp, err := c.gh.Do(ctx, req, target)
	if err != nil {
		var accepted *gh.AcceptedError
		if errors.As(err, &accepted) {
			if raw != nil {
				*raw = accepted.Raw
			}
			return nil
		}
		return translateError(op, resp, err)
	}
	if resp == nil {
		return apperror.Network(op, errors.New("no response"))
	}

	return nil
}

// toModel copies the fields we care about out of go-github's pointer-heavy
// struct. The Get* accessors return zero values for absent fields.
func toModel(r *gh.Repository) model.Repository {
	topics := r.Topics
	if topics == nil {
		topics = []string{}
	}

	return model.Repository{
		ID:              r.GetID(),
		Name:            r.GetName(),
		FullName:        r.GetFullName(),
		Description:     r.GetDescription(),
		URL:             r.GetHTMLURL(),
		PrimaryLanguage: r.GetLanguage(),
		StarCount:       r.GetStargazersCount(),
		ForkCount:       r.GetForksCount(),
		LastUpdatedAt:   r.GetUpdatedAt().Time,
		Topics:          topics,
		HomepageURL:     r.GetHomepage(),
	}
}
