package options_test

import (
	"testing"

	"fjacquet/bank-reco/cmd/options"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "options", options.Cmd.Use)
	assert.Contains(t, options.Cmd.Short, "values available")
	assert.Contains(t, options.Cmd.Long, "checking and savings")
	assert.NotNil(t, options.Cmd.Run)
}

func TestOptionsCommand_Flags(t *testing.T) {
	category := options.Cmd.Flags().Lookup("category")
	require.NotNil(t, category)
	assert.Equal(t, "c", category.Shorthand)
}
