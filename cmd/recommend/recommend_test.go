package recommend_test

import (
	"testing"

	"fjacquet/bank-reco/cmd/recommend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendCommand_Metadata(t *testing.T) {
	assert.Equal(t, "recommend", recommend.Cmd.Use)
	assert.Contains(t, recommend.Cmd.Short, "products matching")
	assert.Contains(t, recommend.Cmd.Long, "combine with AND")
	assert.NotNil(t, recommend.Cmd.Run)
}

func TestRecommendCommand_Flags(t *testing.T) {
	category := recommend.Cmd.Flags().Lookup("category")
	require.NotNil(t, category)
	assert.Equal(t, "c", category.Shorthand)

	goal := recommend.Cmd.Flags().Lookup("goal")
	require.NotNil(t, goal)
	assert.Equal(t, "g", goal.Shorthand)

	for _, name := range []string{"reward-type", "atm", "mobile", "transfer", "min-apy", "max-fee", "compare"} {
		assert.NotNil(t, recommend.Cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "0", recommend.Cmd.Flags().Lookup("min-apy").DefValue)
	assert.Contains(t, recommend.Cmd.Flags().Lookup("compare").Usage, "max 3")
}
