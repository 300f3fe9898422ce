package main

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"storefront/internal/mockapi"
	"storefront/internal/router"
	"storefront/internal/ui"

	"github.com/AlecAivazis/survey/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// executeCommand executes a cobra command and returns its output.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	resetFlags(root)
	oldExit := exit
	exit = func(code int) {
		if code != 0 {
			panic(fmt.Sprintf("exit-%d", code))
		}
	}
	defer func() { exit = oldExit }()
	defer func() {
		if r := recover(); r != nil {
			if s, ok := r.(string); ok && strings.HasPrefix(s, "exit-") {
				return
			}
			panic(r)
		}
	}()
	root.SetArgs(args)
	b := new(bytes.Buffer)
	root.SetOut(b)
	root.SetErr(b)
	root.SetIn(bytes.NewBufferString(""))
	err := root.Execute()
	return b.String(), err
}

// resetFlags resets all flags to their default values.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// setupEnv points the client at a fresh mock API and a temporary SQLite
// session store.
func setupEnv(t *testing.T) *mockapi.Server {
	t.Helper()
	backend := mockapi.New(mockapi.Options{Secret: "test", BcryptCost: bcrypt.MinCost})
	server := httptest.NewServer(backend.Handler())
	t.Cleanup(server.Close)

	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("STOREFRONT_API_BASE_URL", server.URL)
	t.Setenv("STOREFRONT_STORE_TYPE", "sqlite")
	t.Setenv("STOREFRONT_STORE_DSN", filepath.Join(dir, "session.db"))
	t.Setenv("STOREFRONT_LOG_FILE", filepath.Join(dir, "storefront.log"))
	t.Cleanup(func() { closeLog() })
	return backend
}

func TestSessionCommands(t *testing.T) {
	setupEnv(t)

	out, err := executeCommand(rootCmd, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in.")

	out, err = executeCommand(rootCmd, "login", "-u", "customer", "-p", "customer123")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, customer!")

	out, err = executeCommand(rootCmd, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "customer (CUSTOMER)")

	out, err = executeCommand(rootCmd, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out.")

	out, err = executeCommand(rootCmd, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in.")
}

func TestLoginCommand_BadPassword(t *testing.T) {
	setupEnv(t)

	_, err := executeCommand(rootCmd, "login", "-u", "customer", "-p", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Error: Invalid username or password", err.Error())
}

func TestLoginCommand_Prompts(t *testing.T) {
	setupEnv(t)

	answers := map[string]string{"Username:": "supplier", "Password:": "supplier123"}
	orig := askOne
	askOne = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		var msg string
		switch q := p.(type) {
		case *survey.Input:
			msg = q.Message
		case *survey.Password:
			msg = q.Message
		}
		*(response.(*string)) = answers[msg]
		return nil
	}
	defer func() { askOne = orig }()

	_, err := executeCommand(rootCmd, "login")
	require.NoError(t, err)

	out, err := executeCommand(rootCmd, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "supplier (SUPPLIER)")
}

func TestRegisterCommand(t *testing.T) {
	setupEnv(t)

	out, err := executeCommand(rootCmd, "register", "-u", "erin", "-e", "erin@example.com", "-p", "pw", "--role", "supplier")
	require.NoError(t, err)
	assert.Contains(t, out, "Registration successful! Please log in.")

	_, err = executeCommand(rootCmd, "register", "-u", "erin", "-e", "erin@example.com", "-p", "pw", "--role", "supplier")
	assert.Error(t, err)

	_, err = executeCommand(rootCmd, "register", "-u", "root", "-e", "root@example.com", "-p", "pw", "--role", "admin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role must be customer or supplier")

	out, err = executeCommand(rootCmd, "login", "-u", "erin", "-p", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, erin!")
}

type fakeProgram struct {
	m tea.Model
}

func (f fakeProgram) Run() (tea.Model, error) { return f.m, nil }

func TestTUICommand_StartsOnRestoredView(t *testing.T) {
	setupEnv(t)

	_, err := executeCommand(rootCmd, "login", "-u", "admin", "-p", "admin123")
	require.NoError(t, err)

	var got *ui.Model
	orig := newProgram
	newProgram = func(m tea.Model) interface{ Run() (tea.Model, error) } {
		got = m.(*ui.Model)
		return fakeProgram{m: m}
	}
	defer func() { newProgram = orig }()

	_, err = executeCommand(rootCmd, "tui", "--no-color")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, router.AdminDashboard, got.Shown())
}

func TestTUICommand_ViewFlag(t *testing.T) {
	setupEnv(t)

	var got *ui.Model
	orig := newProgram
	newProgram = func(m tea.Model) interface{ Run() (tea.Model, error) } {
		got = m.(*ui.Model)
		return fakeProgram{m: m}
	}
	defer func() { newProgram = orig }()

	_, err := executeCommand(rootCmd, "tui", "--view", "register")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, router.Register, got.Shown())

	// guarded views still resolve for an anonymous user
	got = nil
	_, err = executeCommand(rootCmd, "tui", "--view", "cart")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, router.Login, got.Shown())

	_, err = executeCommand(rootCmd, "tui", "--view", "basement")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown view "basement"`)
}

func TestInvalidConfigExits(t *testing.T) {
	setupEnv(t)
	t.Setenv("STOREFRONT_STORE_TYPE", "redis")

	assert.NotPanics(t, func() {
		_, _ = executeCommand(rootCmd, "whoami")
	})
}

type panickingProgram struct{}

func (panickingProgram) Run() (tea.Model, error) { panic("render failed") }

func TestExecute_RecoversPanic(t *testing.T) {
	setupEnv(t)

	orig := newProgram
	newProgram = func(m tea.Model) interface{ Run() (tea.Model, error) } { return panickingProgram{} }
	defer func() { newProgram = orig }()

	code := -1
	oldExit := exit
	exit = func(c int) { code = c }
	defer func() { exit = oldExit }()

	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"tui"})
	assert.NotPanics(t, Execute)
	assert.Equal(t, 1, code)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
