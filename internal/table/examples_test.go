package table

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aliasspace/alias"
)

func TestExampleCountriesTable(t *testing.T) {
	f, err := LoadFile("../../examples/countries.yaml")
	require.NoError(t, err)

	diags := Check(f)
	require.Empty(t, diags.All(), spew.Sdump(diags))

	ix, err := f.Index()
	require.NoError(t, err)

	inputs := []string{" holland", "COTE D'IVOIRE", "belgie", "united   states", "CURACAO", "Atlantis"}
	got, err := ix.ResolveAll(inputs, alias.Passthrough())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"The Netherlands", "Côte d'Ivoire", "Belgium", "United States", "Curaçao", "Atlantis",
	}, got)
}
