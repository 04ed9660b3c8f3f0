package command

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yndnr/cribcrack/internal/cli/config"
	"github.com/yndnr/cribcrack/internal/cli/output"
	"github.com/yndnr/cribcrack/internal/core/domain"
	"github.com/yndnr/cribcrack/internal/infra/buildinfo"
	"github.com/yndnr/cribcrack/pkg/alphabet"
)

const pumpkinPlain = "Bake the pumpkin pie at noon."

// runApp runs the CLI with args and stdin, isolated from the user's config.
func runApp(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	app := App()
	app.Writer = &out
	app.ErrWriter = &errOut
	app.Reader = strings.NewReader(stdin)

	err = app.Run(append([]string{"cribcrack"}, args...))
	return out.String(), errOut.String(), err
}

func decodeReport(t *testing.T, s string) output.Report {
	t.Helper()
	var rep output.Report
	require.NoError(t, json.Unmarshal([]byte(s), &rep), "stdout: %s", s)
	return rep
}

func TestApp(t *testing.T) {
	app := App()
	require.Equal(t, "cribcrack", app.Name)
	require.NotEmpty(t, app.Usage)

	commands := make(map[string]bool)
	for _, cmd := range app.Commands {
		commands[cmd.Name] = true
	}
	for _, name := range []string{"shift", "vigenere", "encode", "config", "version"} {
		require.True(t, commands[name], "missing command %s", name)
	}

	flags := make(map[string]bool)
	for _, f := range app.Flags {
		flags[f.Names()[0]] = true
	}
	for _, b := range globalBindings {
		require.True(t, flags[b.flag], "binding for unknown flag %s", b.flag)
	}
	require.True(t, flags["config"])
	require.True(t, flags["progress"])
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"not found", ErrNotFound, ExitNotFound},
		{"wrapped not found", errors.Join(errors.New("watch"), ErrNotFound), ExitNotFound},
		{"domain error", domain.ErrInvalidArgument, ExitError},
		{"other", errors.New("boom"), ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestShift_Text(t *testing.T) {
	cipher := alphabet.EncodeShift(pumpkinPlain, 11)

	stdout, _, err := runApp(t, "", "-o", "json", "shift", "--text", cipher)
	require.NoError(t, err)

	rep := decodeReport(t, stdout)
	require.True(t, rep.Found)
	require.NotNil(t, rep.Shift)
	require.Equal(t, 11, *rep.Shift)
	require.Equal(t, pumpkinPlain, rep.Plaintext)
	require.Equal(t, "shift", rep.Variant)
	require.Equal(t, "text", rep.Source)
	require.True(t, domain.IsValidRunID(rep.RunID), "run id %q", rep.RunID)
}

func TestShift_Stdin(t *testing.T) {
	cipher := alphabet.EncodeShift(pumpkinPlain, 3)

	stdout, _, err := runApp(t, cipher+"\n", "shift")
	require.NoError(t, err)
	require.Contains(t, stdout, pumpkinPlain)
}

func TestShift_Args(t *testing.T) {
	stdout, _, err := runApp(t, "", "-o", "json", "shift", "--crib", "cab", "dbc", "fed")
	require.NoError(t, err)

	rep := decodeReport(t, stdout)
	require.Equal(t, 1, *rep.Shift)
	require.Equal(t, "cab edc", rep.Plaintext)
	require.Equal(t, "args", rep.Source)
}

func TestShift_NotFound(t *testing.T) {
	stdout, _, err := runApp(t, "", "-o", "json", "shift", "--text", "no squash here at all")
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, ExitNotFound, ExitCode(err))

	rep := decodeReport(t, stdout)
	require.False(t, rep.Found)
	require.Nil(t, rep.Shift)
	require.Equal(t, alphabet.Size, rep.Tried)
}

func TestShift_InputConflict(t *testing.T) {
	_, _, err := runApp(t, "", "shift", "--text", "abc", "--file", "x.txt")
	require.Error(t, err)
	require.Equal(t, ExitError, ExitCode(err))
}

func TestShift_CribPriority(t *testing.T) {
	cipher := alphabet.EncodeShift(pumpkinPlain, 5)

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("shift:\n  crib: noon\n"), 0o600))

	stdout, _, err := runApp(t, "", "--config", cfgPath, "-o", "json", "shift", "--text", cipher)
	require.NoError(t, err)
	require.Equal(t, 5, *decodeReport(t, stdout).Shift)

	t.Setenv("CRIBCRACK_SHIFT_CRIB", "zebra")
	_, _, err = runApp(t, "", "--config", cfgPath, "shift", "--text", cipher)
	require.ErrorIs(t, err, ErrNotFound, "environment overrides the config file")

	_, _, err = runApp(t, "", "--config", cfgPath, "shift", "--crib", "pie", "--text", cipher)
	require.NoError(t, err, "flag overrides the environment")
}

func TestVigenere_File(t *testing.T) {
	stdout, _, err := runApp(t, "", "-o", "yaml", "vigenere", "--file", filepath.Join("testdata", "recipe_vigenere.txt"))
	require.NoError(t, err)

	var rep output.Report
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &rep))
	require.True(t, rep.Found)
	require.Equal(t, "cork", rep.Key)
	require.Contains(t, rep.Plaintext, "gingerbread")
	require.NotNil(t, rep.Position)
	require.Equal(t, "vigenere", rep.Variant)
}

func TestVigenere_Table(t *testing.T) {
	stdout, _, err := runApp(t, "", "--workers", "2", "vigenere", "-f", filepath.Join("testdata", "recipe_vigenere.txt"))
	require.NoError(t, err)
	require.Contains(t, stdout, "cork")
	require.Contains(t, stdout, "offset")
}

func TestVigenere_Policy(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog"

	_, _, err := runApp(t, "", "vigenere", "--text", text)
	require.ErrorIs(t, err, domain.ErrAlphabetViolation)
	require.Equal(t, ExitError, ExitCode(err))

	_, _, err = runApp(t, "", "vigenere", "--policy", "passthrough", "--text", text)
	require.ErrorIs(t, err, ErrNotFound)

	_, _, err = runApp(t, "", "vigenere", "--policy", "lenient", "--text", text)
	require.ErrorContains(t, err, "invalid configuration")
}

func TestVigenere_Budget(t *testing.T) {
	_, stderr, err := runApp(t, "", "--budget", "1", "vigenere", "--file", filepath.Join("testdata", "recipe_vigenere.txt"))
	require.ErrorIs(t, err, domain.ErrSearchBudgetExhausted)
	require.Equal(t, ExitError, ExitCode(err))
	require.Contains(t, stderr, "search aborted")
}

func TestVigenere_Timeout(t *testing.T) {
	_, _, err := runApp(t, "", "--timeout", "1ns", "vigenere", "--file", filepath.Join("testdata", "recipe_vigenere.txt"))
	require.ErrorIs(t, err, domain.ErrSearchCanceled)
}

func TestVigenere_RedactsKeyInLogs(t *testing.T) {
	args := []string{"--log-level", "info", "--log-format", "json", "vigenere", "--file", filepath.Join("testdata", "recipe_vigenere.txt")}

	_, stderr, err := runApp(t, "", args...)
	require.NoError(t, err)
	require.Contains(t, stderr, `"key":"c...k"`)
	require.NotContains(t, stderr, "cork")

	_, stderr, err = runApp(t, "", append([]string{"--reveal"}, args...)...)
	require.NoError(t, err)
	require.Contains(t, stderr, `"key":"cork"`)
}

func TestVigenere_MetricsTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cribcrack.prom")

	_, _, err := runApp(t, "", "--metrics-textfile", path, "vigenere", "--file", filepath.Join("testdata", "recipe_vigenere.txt"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `cribcrack_recoveries_total{outcome="found",variant="vigenere"} 1`)
	require.Contains(t, string(data), "cribcrack_build_info")
}

func TestVigenere_Progress(t *testing.T) {
	_, stderr, err := runApp(t, "", "--progress", "vigenere", "--file", filepath.Join("testdata", "recipe_vigenere.txt"))
	require.NoError(t, err)
	require.Contains(t, stderr, "\r\033[K")
}

func TestEncode_Shift(t *testing.T) {
	stdout, _, err := runApp(t, "", "encode", "shift", "--shift", "3", "--text", "Hello, World")
	require.NoError(t, err)
	require.Equal(t, "Khoor, Zruog\n", stdout)
}

func TestEncode_VigenereRoundTrip(t *testing.T) {
	plain := "servethegingerbreadwarmwithcream"

	cipher, _, err := runApp(t, "", "encode", "vigenere", "--key", "cork", plain)
	require.NoError(t, err)
	cipher = strings.TrimSpace(cipher)
	require.NotEqual(t, plain, cipher)

	stdout, _, err := runApp(t, "", "-o", "json", "vigenere", "--text", cipher)
	require.NoError(t, err)

	rep := decodeReport(t, stdout)
	require.Equal(t, "cork", rep.Key)
	require.Equal(t, plain, rep.Plaintext)
}

func TestEncode_VigenereStrict(t *testing.T) {
	_, _, err := runApp(t, "", "encode", "vigenere", "--key", "cork", "--text", "two words")
	require.Error(t, err)

	stdout, _, err := runApp(t, "", "encode", "vigenere", "--key", "b", "--policy", "passthrough", "--text", "two words")
	require.NoError(t, err)
	require.Equal(t, "uxp xpset\n", stdout)
}

func TestEncode_RequiresKey(t *testing.T) {
	_, _, err := runApp(t, "", "encode", "vigenere", "--text", "abc")
	require.Error(t, err)
}

func TestConfigShow(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("vigenere:\n  key_length: 5\n"), 0o600))

	stdout, _, err := runApp(t, "", "--config", cfgPath, "--workers", "3", "-o", "json", "config", "show")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(stdout), &cfg))
	require.Equal(t, 5, cfg.Vigenere.KeyLength)
	require.Equal(t, 3, cfg.Search.Workers)
	require.Equal(t, config.DefaultShiftCrib, cfg.Shift.Crib)

	stdout, _, err = runApp(t, "", "config", "show")
	require.NoError(t, err)
	require.Contains(t, stdout, "crib: gingerbread")
}

func TestConfigValidate(t *testing.T) {
	stdout, _, err := runApp(t, "", "config", "validate")
	require.NoError(t, err)
	require.Contains(t, stdout, "valid")

	_, _, err = runApp(t, "", "--log-level", "loud", "config", "validate")
	require.ErrorContains(t, err, "invalid configuration")

	_, _, err = runApp(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "config", "validate")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := runApp(t, "", "-o", "json", "version")
	require.NoError(t, err)

	var info buildinfo.Info
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	require.Equal(t, buildinfo.Version, info.Version)
	require.NotEmpty(t, info.GoVersion)
}

// syncBuffer is a bytes.Buffer safe for the concurrent writes of watch mode.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

func TestShift_Watch(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "cipher.txt")
	require.NoError(t, os.WriteFile(path, []byte("nothing to see\n"), 0o600))

	var out, errOut syncBuffer
	app := App()
	app.Writer = &out
	app.ErrWriter = &errOut

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- app.RunContext(ctx, []string{"cribcrack", "-o", "json", "shift", "--watch", "--file", path})
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), `"found": false`)
	}, 5*time.Second, 10*time.Millisecond)

	cipher := alphabet.EncodeShift(pumpkinPlain, 7)
	require.NoError(t, os.WriteFile(path, []byte(cipher+"\n"), 0o600))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), `"found": true`)
	}, 5*time.Second, 10*time.Millisecond)
	require.Contains(t, out.String(), pumpkinPlain)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestShift_WatchRequiresFile(t *testing.T) {
	_, _, err := runApp(t, "", "shift", "--watch", "--text", "abc")
	require.ErrorContains(t, err, "--watch requires --file")
}
