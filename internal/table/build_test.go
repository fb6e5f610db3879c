package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aliasspace/alias"
	"aliasspace/process"
)

func TestFile_Index(t *testing.T) {
	f, err := Parse([]byte(countriesYAML))
	require.NoError(t, err)

	ix, err := f.Index()
	require.NoError(t, err)

	assert.Equal(t, "countries", ix.Name())
	assert.Equal(t, []string{"lower", "rstrip"}, ix.Processor().Names())

	tests := []struct {
		input    string
		expected string
	}{
		{"nl", "The Netherlands"},
		{"HOLLAND  ", "The Netherlands"},
		{"be", "Belgium"},
		{"luxembourg", "Luxembourg"},
		{"no", "Norway"},
		{"47", "Norway"},
		{"France", "France"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ix.Resolve(tt.input, alias.Passthrough())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFile_Index_FileOrderIsRegistrationOrder(t *testing.T) {
	f, err := Parse([]byte("aliases:\n  B: [x]\n  A: [x]\n"))
	require.NoError(t, err)

	ix, err := f.Index()
	require.NoError(t, err)

	got, _ := ix.Resolve("x", alias.Passthrough())
	assert.Equal(t, "A", got)
}

func TestFile_Index_OptionsOverride(t *testing.T) {
	f, err := Parse([]byte(countriesYAML))
	require.NoError(t, err)

	ix, err := f.Index(alias.WithName("override"), alias.WithProcessor(process.New()))
	require.NoError(t, err)

	assert.Equal(t, "override", ix.Name())
	assert.False(t, ix.Contains("nl"))
	assert.True(t, ix.Contains("NL"))
}

func TestFile_Index_UnknownTransform(t *testing.T) {
	f, err := Parse([]byte("processor: soundex\naliases:\n  A: [a]\n"))
	require.NoError(t, err)

	_, err = f.Index()
	require.Error(t, err)
	assert.ErrorIs(t, err, process.ErrUnknownTransform)
	assert.Contains(t, err.Error(), "alias table processor")
}

func TestFromIndex(t *testing.T) {
	ix := alias.New([]alias.Group{
		{Representative: "Germany", Aliases: []string{"DE"}},
	}, alias.WithName("countries"), alias.WithProcessor(process.New().Trim().Fold()))
	ix.AddAlias("Deutschland", "Germany")
	ix.AddAlias("BE", "Belgium")

	f := FromIndex(ix)
	assert.Equal(t, &File{
		Version:   CurrentVersion,
		Name:      "countries",
		Processor: StringOrArray{"trim", "fold"},
		Aliases: GroupList{
			{Representative: "Germany", Aliases: []string{"DE", "Deutschland"}},
			{Representative: "Belgium", Aliases: []string{"BE"}},
		},
	}, f)

	data, err := Marshal(f)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)

	rebuilt, err := back.Index()
	require.NoError(t, err)
	assert.Equal(t, ix.Table(), rebuilt.Table())
}
