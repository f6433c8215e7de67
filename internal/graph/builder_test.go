package graph

import (
	"testing"

	"confviz/internal/extractor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_INI(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddFile("app.ini", extractor.FormatINI, []extractor.Relation{
		{Scope: "db", Key: "host", Value: "localhost"},
	}))

	g := b.Graph()
	require.True(t, g.HasNode("db"))
	require.True(t, g.HasNode("host"))
	assert.Equal(t, TypeINI, g.Nodes["db"].Type)
	assert.Equal(t, TypeINIKey, g.Nodes["host"].Type)

	require.Len(t, g.Edges, 1)
	assert.Equal(t, Edge{From: "db", To: "host", Key: "host", Value: "localhost"}, g.Edges[0])
}

func TestBuilder_INI_SectionlessFallsBackToFileName(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddFile("app.ini", extractor.FormatINI, []extractor.Relation{
		{Key: "root", Value: "1"},
	}))

	g := b.Graph()
	require.True(t, g.HasNode("app.ini"))
	assert.Equal(t, "INI File: app.ini", g.Nodes["app.ini"].Label)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "app.ini", g.Edges[0].From)
}

func TestBuilder_Properties(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddFile("vars.properties", extractor.FormatProperties, []extractor.Relation{
		{Key: "timeout", Value: "30"},
	}))

	g := b.Graph()
	require.True(t, g.HasNode("vars.properties"))
	require.True(t, g.HasNode("timeout"))
	assert.Equal(t, TypeProperties, g.Nodes["vars.properties"].Type)
	assert.Equal(t, TypePropertyKey, g.Nodes["timeout"].Type)

	require.Len(t, g.Edges, 1)
	assert.Equal(t, Edge{From: "vars.properties", To: "timeout", Key: "timeout", Value: "30"}, g.Edges[0])
}

func TestBuilder_Jinja(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddFile("page.j2", extractor.FormatJinja, []extractor.Relation{
		{Key: "username"},
	}))

	g := b.Graph()
	require.True(t, g.HasNode("page.j2"))
	require.True(t, g.HasNode("username"))
	assert.Equal(t, TypeJinja, g.Nodes["page.j2"].Type)
	assert.Equal(t, TypeVariable, g.Nodes["username"].Type)
	assert.Equal(t, "Variable: username", g.Nodes["username"].Label)

	require.Len(t, g.Edges, 1)
	assert.Equal(t, "uses", g.Edges[0].Key)
	assert.Equal(t, "username used in page.j2", g.Edges[0].Value)
}

func TestBuilder_Jinja_NoVariablesNoNode(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddFile("static.j2", extractor.FormatJinja, nil))
	assert.Empty(t, b.Graph().Nodes)
}

func TestBuilder_YAML_NestedMapping(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddFile("config.yml", extractor.FormatYAML, []extractor.Relation{
		{Scope: "server", Key: "port", Value: 8080},
		{Scope: "server", Key: "host", Value: "0.0.0.0"},
	}))

	g := b.Graph()
	// Each nested pair yields exactly one edge from the top-level key to
	// the nested key.
	require.True(t, g.HasNode("server"))
	assert.Equal(t, TypeYAML, g.Nodes["server"].Type)
	require.Len(t, g.Edges, 2)
	for _, edge := range g.Edges {
		assert.Equal(t, "server", edge.From)
	}
	assert.True(t, g.HasNode("port"))
	assert.True(t, g.HasNode("host"))
}

func TestBuilder_YAML_ValueOnlyPlaceholder(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddFile("list.yml", extractor.FormatYAML, []extractor.Relation{
		{Scope: "ListItem0", Value: "alpha"},
	}))

	g := b.Graph()
	// Value-only entries get a placeholder node instead of being dropped.
	require.True(t, g.HasNode("ListItem0"))
	require.True(t, g.HasNode("alpha"))
	assert.Equal(t, TypeYAMLKey, g.Nodes["alpha"].Type)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, Edge{From: "ListItem0", To: "alpha", Key: "", Value: "alpha"}, g.Edges[0])
}

func TestBuilder_ScopeOnlyRelation(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddFile("sparse.yml", extractor.FormatYAML, []extractor.Relation{
		{Scope: "placeholder"},
	}))

	g := b.Graph()
	assert.True(t, g.HasNode("placeholder"))
	assert.Empty(t, g.Edges)
}

func TestBuilder_UnknownFormat(t *testing.T) {
	b := NewBuilder()
	err := b.AddFile("x.toml", "toml", []extractor.Relation{{Key: "k"}})
	assert.Error(t, err)
}

func TestBuilder_Idempotence(t *testing.T) {
	relations := []extractor.Relation{
		{Scope: "db", Key: "host", Value: "localhost"},
		{Scope: "db", Key: "port", Value: "5432"},
	}

	build := func() *Graph {
		b := NewBuilder()
		require.NoError(t, b.AddFile("app.ini", extractor.FormatINI, relations))
		require.NoError(t, b.AddFile("app.ini", extractor.FormatINI, relations))
		return b.Graph()
	}

	g1, g2 := build(), build()
	assert.Equal(t, g1.Nodes, g2.Nodes)
	assert.ElementsMatch(t, g1.Edges, g2.Edges)
	// Re-adding the same file never duplicates edges.
	assert.Len(t, g1.Edges, 2)
}
