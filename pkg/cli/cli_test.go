package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usersYAML = `- name: users
  uri_template: http://example.com/users{-prefix|.|format}
  path_template: /users{-prefix|.|format}
  optional_params: [format]
  options: [GET, POST]
  resource_templates:
    - name: user
      uri_template: http://example.com/users/{user_id}{-prefix|.|format}
      path_template: /users/{user_id}{-prefix|.|format}
      params: [user_id]
      optional_params: [format]
      options: [GET, PUT, DELETE]
      resource_templates:
        - name: edit_user
          rel: edit
          uri_template: http://example.com/users/{user_id}/edit{-prefix|.|format}
          path_template: /users/{user_id}/edit{-prefix|.|format}
          params: [user_id]
          optional_params: [format]
          options: [GET]
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// resetFlags restores every command flag variable to its default so runs
// within one test binary do not leak state into each other.
func resetFlags() {
	showFormat = "text"
	convertTo = "yaml"
	convertOutput = ""
	expandParams = nil
	expandBase = ""
	expandPathOnly = false
	expandFiles = nil
	partialParams = nil
	partialTo = "yaml"
	partialOutput = ""
	partialName = ""
	validateStrict = false
}

func runCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestShowText(t *testing.T) {
	path := writeFixture(t, usersYAML)

	out, _, err := runCommand(t, "", "show", "--output", "text", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "users"))
	assert.True(t, strings.HasPrefix(lines[1], "  {user_id}"))
	assert.True(t, strings.HasPrefix(lines[2], "    edit"))
}

func TestConvertToXML(t *testing.T) {
	path := writeFixture(t, usersYAML)

	out, _, err := runCommand(t, "", "convert", "--to", "xml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "<ResourceTemplates>")
	assert.Contains(t, out, "<Name>edit_user</Name>")
}

func TestConvertFromStdin(t *testing.T) {
	out, _, err := runCommand(t, `[{"name": "users", "path_template": "/users"}]`, "convert", "--to", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: users")
	assert.Contains(t, out, "path_template: /users")
}

func TestExpand(t *testing.T) {
	path := writeFixture(t, usersYAML)

	out, _, err := runCommand(t, "",
		"expand", "user", "-f", path,
		"--param", "user_id=dojo", "--param", "format=json")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/users/dojo.json\n", out)

	out, _, err = runCommand(t, "",
		"expand", "user", "-f", path, "--param", "user_id=dojo", "--path-only")
	require.NoError(t, err)
	assert.Equal(t, "/users/dojo\n", out)

	_, _, err = runCommand(t, "", "expand", "nobody", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nobody")
}

func TestExpandBadParamFlag(t *testing.T) {
	path := writeFixture(t, usersYAML)

	_, _, err := runCommand(t, "", "expand", "user", "-f", path, "--param", "user_id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key=value")
}

func TestPartial(t *testing.T) {
	path := writeFixture(t, usersYAML)

	out, _, err := runCommand(t, "",
		"partial", path, "--param", "user_id=dojo", "--to", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "path_template: /users/dojo/edit{-prefix|.|format}")
	assert.NotContains(t, out, "{user_id}")
	assert.NotContains(t, out, "- user_id")
}

func TestPartialSubtree(t *testing.T) {
	path := writeFixture(t, usersYAML)

	out, _, err := runCommand(t, "",
		"partial", path, "--param", "user_id=dojo", "--name", "user", "--to", "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"name": "user"`)
	assert.NotContains(t, out, `"name": "users"`)
}

func TestNames(t *testing.T) {
	path := writeFixture(t, usersYAML)

	out, _, err := runCommand(t, "", "names", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	// Sorted: edit_user, user, users.
	assert.True(t, strings.HasPrefix(lines[0], "edit_user"))
	assert.True(t, strings.HasPrefix(lines[1], "user"))
	assert.True(t, strings.HasPrefix(lines[2], "users"))
}

func TestValidate(t *testing.T) {
	path := writeFixture(t, usersYAML)

	out, _, err := runCommand(t, "", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
}

func TestValidateRejectsBadShape(t *testing.T) {
	path := writeFixture(t, "- name: users\n  options: GET\n")

	_, errOut, err := runCommand(t, "", "validate", path)
	require.Error(t, err)
	assert.Contains(t, errOut, "resource template format")
}

func TestValidateStrict(t *testing.T) {
	path := writeFixture(t, "- name: dup\n- name: dup\n")

	_, errOut, err := runCommand(t, "", "validate", "--strict", path)
	require.Error(t, err)
	assert.Contains(t, errOut, "duplicate resource template name")
}

func TestVersion(t *testing.T) {
	out, _, err := runCommand(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "describedroutes")
}
