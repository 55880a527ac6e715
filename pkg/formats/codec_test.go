package formats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/describedroutes/describedroutes/pkg/resource"
)

func TestRoundTrip(t *testing.T) {
	doc := usersDoc()
	for _, f := range DecodeFormats() {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Marshal(doc, f)
			require.NoError(t, err)

			decoded, err := Unmarshal(data, f)
			require.NoError(t, err)
			assert.Equal(t, doc, decoded)
		})
	}
}

func TestMarshalOmitsEmptyAttributes(t *testing.T) {
	doc := []resource.Definition{{Name: "users", PathTemplate: "/users"}}

	for _, f := range []Format{FormatJSON, FormatYAML} {
		data, err := Marshal(doc, f)
		require.NoError(t, err)
		for _, key := range []string{"rel", "options", "uri_template", "params", "optional_params", "resource_templates"} {
			assert.NotContains(t, string(data), key, "format %s", f)
		}
	}

	data, err := Marshal(doc, FormatXML)
	require.NoError(t, err)
	for _, el := range []string{"<Rel>", "<Options>", "<UriTemplate>", "<Params>", "<OptionalParams>"} {
		assert.NotContains(t, string(data), el)
	}
}

func TestUnmarshalSingleMapping(t *testing.T) {
	jsonDoc := `{"name": "users", "path_template": "/users"}`
	yamlDoc := "name: users\npath_template: /users\n"

	want := []resource.Definition{{Name: "users", PathTemplate: "/users"}}

	got, err := Unmarshal([]byte(jsonDoc), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = Unmarshal([]byte(yamlDoc), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUnmarshalIgnoresUnknownKeys(t *testing.T) {
	doc := `[{"name": "users", "path_template": "/users", "description": "future extension"}]`

	got, err := Unmarshal([]byte(doc), FormatJSON)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "users", got[0].Name)
}

func TestUnmarshalMalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{name: "options not a sequence", data: `[{"name": "users", "options": "GET"}]`, format: FormatJSON},
		{name: "params not strings", data: "- name: users\n  params:\n    key: value\n", format: FormatYAML},
		{name: "truncated json", data: `[{"name": "users"`, format: FormatJSON},
		{name: "broken xml", data: "<ResourceTemplates><ResourceTemplate>", format: FormatXML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.data), tt.format)
			var malformed *resource.MalformedInputError
			require.ErrorAs(t, err, &malformed)
		})
	}
}

func TestUnmarshalTextRejected(t *testing.T) {
	_, err := Unmarshal([]byte("users users GET /users"), FormatText)
	assert.Error(t, err)
}

func TestMarshalXMLShape(t *testing.T) {
	data, err := Marshal(usersDoc(), FormatXML)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "<ResourceTemplates>")
	assert.Contains(t, out, "<ResourceTemplate>")
	assert.Contains(t, out, "<Options>GET, POST</Options>")
	assert.Contains(t, out, "<UriTemplate>http://example.com/users/{user_id}</UriTemplate>")
	assert.Contains(t, out, "<Params>")
	assert.Contains(t, out, "<Param>user_id</Param>")
	assert.Contains(t, out, "<OptionalParams>")

	// Nested templates sit inside a nested container, and the document
	// declares itself as XML.
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Equal(t, 3, strings.Count(out, "<ResourceTemplates>"), "root plus one nested container per parent")
}

func TestReport(t *testing.T) {
	out := Report(usersDoc())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	// Roots are addressed by name, parameterized children by their params,
	// rel'd children by their rel; depth shows as indentation.
	assert.True(t, strings.HasPrefix(lines[0], "users "))
	assert.True(t, strings.HasPrefix(lines[1], "  {user_id}"))
	assert.True(t, strings.HasPrefix(lines[2], "    edit "))

	assert.Contains(t, lines[0], "GET, POST")
	assert.Contains(t, lines[0], "http://example.com/users{-prefix|.|format}")
	assert.Contains(t, lines[1], "user")
	assert.Contains(t, lines[2], "edit_user")
}

func TestReportFallsBackToPathTemplate(t *testing.T) {
	out := Report([]resource.Definition{{Name: "users", PathTemplate: "/users"}})
	assert.Contains(t, out, "/users")
}
