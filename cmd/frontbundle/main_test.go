package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommandBundlesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	files := map[string]string{
		"src/utils/api.js":                  "export const api = {};\n",
		"src/App.jsx":                       "export default function App() {}\n",
		"src/components/NavBar.jsx":         "nav\n",
		"src/components/index.js":           "export * from './NavBar';\n",
		"src/pages/HomePage.jsx":            "home\n",
		"src/pages/node_modules/dep/dep.js": "dep\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "✨ Success! 4 React files bundled into frontend_payload.txt\n", out)

	report, err := os.ReadFile(filepath.Join(dir, "frontend_payload.txt"))
	require.NoError(t, err)
	text := string(report)
	assert.True(t, strings.HasPrefix(text, "⚛️ FRONTEND BUNDLE FOR REVIEW\n"))
	assert.Contains(t, text, "--- BATCH 1 | src/utils/api.js ---")
	assert.Contains(t, text, "--- BATCH 2 | src/App.jsx ---")
	assert.Contains(t, text, "--- BATCH 4 | "+filepath.Join("src", "pages", "HomePage.jsx")+" ---")
	assert.NotContains(t, text, "dep.js")
	assert.NotContains(t, text, "index.js")
}

func TestRootCommandRejectsArguments(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "extra")
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
