package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	for _, sub := range []string{"serve", "render", "variants", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "daisy dev (commit unknown, built unknown)\n", out)

	out, err = run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestRenderComponent(t *testing.T) {
	out, err := run(t, "render", "button")
	require.NoError(t, err)
	assert.Equal(t, `<button class="btn test btn-primary btn-lg  " id="id" type="button">Hello</button>`+"\n", out)
}

func TestRenderList(t *testing.T) {
	out, err := run(t, "render", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "modal-native")
	assert.Contains(t, out, "progress")
}

func TestRenderFragment(t *testing.T) {
	out, err := run(t, "render", "button", "--fragment", "id")
	require.NoError(t, err)
	assert.Equal(t, "Hello\n", out)

	_, err = run(t, "render", "button", "--fragment", "missing")
	assert.ErrorContains(t, err, "missing")
}

func TestRenderPage(t *testing.T) {
	out, err := run(t, "render", "loading", "--page", "--theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, `<!DOCTYPE html><html lang="en" data-theme="dark">`)
	assert.Contains(t, out, "loading-dots")
}

func TestRenderUnknown(t *testing.T) {
	_, err := run(t, "render", "carousel")
	assert.ErrorContains(t, err, `unknown component "carousel"`)
}

func TestVariants(t *testing.T) {
	out, err := run(t, "variants")
	require.NoError(t, err)
	assert.Contains(t, out, "actions.ButtonColor")
	assert.Contains(t, out, "Neutral (default)")
	assert.Contains(t, out, "btn-primary")
	assert.Contains(t, out, "feedback.ProgressColor")
}

func TestVariantsFilter(t *testing.T) {
	out, err := run(t, "variants", "direction")
	require.NoError(t, err)
	assert.Contains(t, out, "dropdown-right")
	assert.NotContains(t, out, "btn-primary")

	_, err = run(t, "variants", "nope")
	assert.ErrorContains(t, err, "unknown enumeration")
}

func TestVariantsCheck(t *testing.T) {
	out, err := run(t, "variants", "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "actions.ButtonSize: btn-sm <- Default, Small")
	assert.Contains(t, out, "Loading-sm")
	assert.Contains(t, out, "text-waring")
}

func TestVariantsTokens(t *testing.T) {
	out, err := run(t, "variants", "ButtonShape", "--tokens")
	require.NoError(t, err)
	assert.Equal(t, "btn-circle\nbtn-square\n", out)
}

func TestServeRejectsBadConfig(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err = run(t, "serve", "--theme", "neon")
	assert.ErrorContains(t, err, "invalid config")
}
