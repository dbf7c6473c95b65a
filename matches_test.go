package cliargs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gh.tarampamp.am/cliargs"
)

func TestArgMatches_Accessors(t *testing.T) {
	t.Parallel()

	cmd := cliargs.NewCommand("app").
		Arg(cliargs.NewArg("tag").Long("tag").TakesMultipleValues()).
		Arg(cliargs.NewArg("name").Long("name").TakesValue())

	m, err := cmd.Parse([]string{"app", "--tag", "x", "--tag", "y", "--name", "z"})
	require.NoError(t, err)

	t.Run("GetOne", func(t *testing.T) {
		v, ok := m.GetOne("name")
		assert.True(t, ok)
		assert.Equal(t, "z", v)

		v, ok = m.GetOne("nope")
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("GetMany", func(t *testing.T) {
		vs, ok := m.GetMany("tag")
		assert.True(t, ok)
		assert.Equal(t, []string{"x", "y"}, vs)

		vs, ok = m.GetMany("nope")
		assert.False(t, ok)
		assert.Nil(t, vs)
	})

	t.Run("Has", func(t *testing.T) {
		assert.True(t, m.Has("tag"))
		assert.False(t, m.Has("nope"))
		assert.False(t, m.Has("help"), "unmatched implicit flags have no entry")
	})

	t.Run("no subcommand", func(t *testing.T) {
		name, sub, ok := m.Subcommand()
		assert.False(t, ok)
		assert.Empty(t, name)
		assert.Nil(t, sub)
	})
}

func TestArgMatches_GetManyReturnsACopy(t *testing.T) {
	t.Parallel()

	cmd := cliargs.NewCommand("app").
		Arg(cliargs.NewArg("tag").Long("tag").TakesMultipleValues())

	m, err := cmd.Parse([]string{"app", "--tag", "x", "--tag", "y"})
	require.NoError(t, err)

	first, _ := m.GetMany("tag")
	first[0] = "mutated"

	second, _ := m.GetMany("tag")
	assert.Equal(t, []string{"x", "y"}, second)
}

func TestArgMatches_RecordedEmptyStringCountsAsPresent(t *testing.T) {
	t.Parallel()

	cmd := cliargs.NewCommand("app").
		Arg(cliargs.NewArg("name").Long("name").TakesValue())

	m, err := cmd.Parse([]string{"app", "--name", ""})
	require.NoError(t, err)

	assert.True(t, m.Has("name"))

	vs, ok := m.GetMany("name")
	assert.True(t, ok)
	assert.Equal(t, []string{""}, vs)
}
