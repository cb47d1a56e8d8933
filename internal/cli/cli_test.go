package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/repo-showcase/internal/apperror"
	"github.com/sakif/repo-showcase/internal/model"
)

type mockRepositoryService struct {
	repos   []model.Repository
	err     error
	exists  map[string]bool
	account string
}

func (m *mockRepositoryService) FetchRepositories(_ context.Context, account string) ([]model.Repository, error) {
	m.account = account
	return m.repos, m.err
}

func (m *mockRepositoryService) AccountExists(_ context.Context, account string) bool {
	m.account = account
	return m.exists[account]
}

// setupTestService installs mock as the service and restores the previous
// state (including flags) when the test ends.
func setupTestService(t *testing.T, mock *mockRepositoryService) {
	t.Helper()

	oldService, oldAccount := repositoryService, defaultAccount
	SetRepositoryService(mock, "weo-soft")

	t.Cleanup(func() {
		repositoryService, defaultAccount = oldService, oldAccount
		listJSON = false
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := Execute(context.Background())
	return buf.String(), err
}

var testRepos = []model.Repository{
	{
		Name:            "gherkin",
		Description:     "Parser and compiler",
		URL:             "https://github.com/cucumber/gherkin",
		PrimaryLanguage: "Go",
		StarCount:       100,
		ForkCount:       7,
		LastUpdatedAt:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Topics:          []string{"bdd", "parser", "cucumber", "gherkin", "testing"},
		HomepageURL:     "https://cucumber.io/docs",
	},
	{
		Name:      "cucumber-jvm",
		URL:       "https://github.com/cucumber/cucumber-jvm",
		StarCount: 20,
		Topics:    []string{},
	},
}

func TestListCmd_Use(t *testing.T) {
	assert.Equal(t, "list [account]", listCmd.Use)

	flag := listCmd.Flags().Lookup("json")
	require.NotNil(t, flag, "json flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}

func TestListCmd_Cards(t *testing.T) {
	mock := &mockRepositoryService{repos: testRepos}
	setupTestService(t, mock)

	out, err := run(t, "list")
	require.NoError(t, err)

	assert.Equal(t, "weo-soft", mock.account)
	assert.Contains(t, out, "Featured Projects (2)")
	assert.Contains(t, out, "gherkin")
	assert.Contains(t, out, "100 stars · 7 forks · Updated Mar 5, 2024")
	assert.Contains(t, out, "#bdd")
	assert.Contains(t, out, "+1")
	assert.Contains(t, out, "https://cucumber.io/docs")
	assert.Less(t, bytes.Index([]byte(out), []byte("gherkin")), bytes.Index([]byte(out), []byte("cucumber-jvm")))
}

func TestListCmd_Account(t *testing.T) {
	mock := &mockRepositoryService{repos: []model.Repository{}}
	setupTestService(t, mock)

	out, err := run(t, "list", "cucumber")
	require.NoError(t, err)

	assert.Equal(t, "cucumber", mock.account)
	assert.Contains(t, out, "No projects to show for cucumber.")
}

func TestListCmd_JSON(t *testing.T) {
	setupTestService(t, &mockRepositoryService{repos: testRepos})

	out, err := run(t, "list", "--json")
	require.NoError(t, err)

	var got []model.Repository
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "gherkin", got[0].Name)
}

func TestListCmd_TooManyArgs(t *testing.T) {
	setupTestService(t, &mockRepositoryService{})

	_, err := run(t, "list", "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg(s)")
}

func TestListCmd_ServiceError(t *testing.T) {
	setupTestService(t, &mockRepositoryService{err: apperror.RemoteService(404, "Not Found")})

	_, err := run(t, "list", "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrRemoteService))
	assert.Contains(t, err.Error(), "listing repositories")
}

func TestListCmd_NotConfigured(t *testing.T) {
	setupTestService(t, nil)
	repositoryService = nil

	_, err := run(t, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestExistsCmd(t *testing.T) {
	tests := []struct {
		account string
		want    string
	}{
		{account: "cucumber", want: "true\n"},
		{account: "ghost", want: "false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.account, func(t *testing.T) {
			mock := &mockRepositoryService{exists: map[string]bool{"cucumber": true}}
			setupTestService(t, mock)

			out, err := run(t, "exists", tt.account)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
			assert.Equal(t, tt.account, mock.account)
		})
	}
}

func TestExistsCmd_RequiresExactlyOneArg(t *testing.T) {
	setupTestService(t, &mockRepositoryService{})

	_, err := run(t, "exists")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

var errWriteFailed = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWriteFailed }

func TestCommands_ReportWriteErrors(t *testing.T) {
	tests := []struct {
		name  string
		repos []model.Repository
		args  []string
	}{
		{name: "cards", repos: testRepos, args: []string{"list"}},
		{name: "empty", repos: []model.Repository{}, args: []string{"list"}},
		{name: "json", repos: testRepos, args: []string{"list", "--json"}},
		{name: "exists", args: []string{"exists", "cucumber"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestService(t, &mockRepositoryService{repos: tt.repos})

			rootCmd.SetOut(failingWriter{})
			rootCmd.SetErr(new(bytes.Buffer))
			rootCmd.SetArgs(tt.args)

			err := Execute(context.Background())
			assert.ErrorIs(t, err, errWriteFailed)
		})
	}
}
