package resource

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionRoundTrip(t *testing.T) {
	c := usersCollection()

	defs := c.ToDefinitions()
	rebuilt := FromDefinitions(defs)

	assert.Equal(t, defs, rebuilt.ToDefinitions())
}

func TestToDefinitionOmitsEmptyAttributes(t *testing.T) {
	node := New(Fields{
		Name:         "users",
		PathTemplate: "/users",
	})

	data, err := json.Marshal(node.ToDefinition())
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"users","path_template":"/users"}`, string(data))

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &keys))
	assert.NotContains(t, keys, "optional_params")
	assert.NotContains(t, keys, "options")
	assert.NotContains(t, keys, "resource_templates")
}

func TestFromDefinitionIgnoresLaterMutation(t *testing.T) {
	d := Definition{
		Name:   "users",
		Params: []string{"user_id"},
	}
	node := FromDefinition(d)

	d.Params[0] = "changed"
	assert.Equal(t, []string{"user_id"}, node.Params())
}

func TestDefinitionChildOrderPreserved(t *testing.T) {
	d := Definition{
		Name: "root",
		Children: []Definition{
			{Name: "c", Rel: "c"},
			{Name: "a", Rel: "a"},
			{Name: "b", Rel: "b"},
		},
	}

	node := FromDefinition(d)
	var order []string
	for _, child := range node.Children() {
		order = append(order, child.Name())
	}
	assert.Equal(t, []string{"c", "a", "b"}, order)

	// And the order survives the trip back out.
	out := node.ToDefinition()
	assert.Equal(t, d.Children[0].Name, out.Children[0].Name)
	assert.Equal(t, d.Children[2].Name, out.Children[2].Name)
}
