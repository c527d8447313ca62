package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRules = []Rule{
	{Category: "work", Keyword: "meeting", Client: ""},
	{Category: "work", Keyword: "acme sprint review", Client: "Acme"},
	{Category: "personal", Keyword: "gym"},
	{Category: "work", Keyword: "פגישה"},
}

func TestClassifyWorkMatch(t *testing.T) {
	res := Classify([]Event{{ID: "1", Title: "Team Meeting"}}, testRules)
	require.Len(t, res, 1)
	assert.True(t, res[0].IsWork)
	assert.Equal(t, "meeting", res[0].MatchedKeyword)
	assert.Greater(t, res[0].Confidence, DefaultConfidence)
}

func TestClassifySpecificityWins(t *testing.T) {
	// both "meeting" and the longer rule could apply; the long one wins and
	// carries its client suggestion
	res := Classify([]Event{{ID: "1", Title: "Acme sprint review meeting"}}, testRules)
	assert.Equal(t, "acme sprint review", res[0].MatchedKeyword)
	assert.Equal(t, "Acme", res[0].SuggestedClient)

	// exact title match scores highest
	exact := Classify([]Event{{ID: "2", Title: "acme sprint review"}}, testRules)
	assert.InDelta(t, 0.95, exact[0].Confidence, 1e-9)
	assert.Greater(t, exact[0].Confidence, res[0].Confidence)
}

func TestClassifyPersonalMatch(t *testing.T) {
	res := Classify([]Event{{ID: "1", Title: "Gym with Dana"}}, testRules)
	assert.False(t, res[0].IsWork)
	assert.Empty(t, res[0].SuggestedClient)
	assert.False(t, res[0].AutoImport)
}

func TestClassifyDefaultIsWorkLowConfidence(t *testing.T) {
	res := Classify([]Event{{ID: "1", Title: "Untitled block"}}, testRules)
	assert.True(t, res[0].IsWork)
	assert.Equal(t, DefaultConfidence, res[0].Confidence)
	// 0.5 sits below the auto-import threshold
	assert.False(t, res[0].AutoImport)
}

func TestClassifyDiacriticsInsensitive(t *testing.T) {
	// niqqud on the title must not defeat the Hebrew keyword
	res := Classify([]Event{{ID: "1", Title: "פְּגִישָׁה עם דנה"}}, testRules)
	assert.True(t, res[0].IsWork)
	assert.Equal(t, "פגישה", res[0].MatchedKeyword)

	// case-insensitive on the Latin side
	res = Classify([]Event{{ID: "2", Title: "MEETING"}}, testRules)
	assert.Equal(t, "meeting", res[0].MatchedKeyword)
}

func TestClassifyAutoImportThreshold(t *testing.T) {
	res := Classify([]Event{{ID: "1", Title: "meeting"}}, testRules)
	assert.GreaterOrEqual(t, res[0].Confidence, AutoImportThreshold)
	assert.True(t, res[0].AutoImport)
}

func TestClassifyEmptyInputs(t *testing.T) {
	assert.Empty(t, Classify(nil, testRules))

	// no rules at all: everything defaults to work at 0.5
	res := Classify([]Event{{ID: "1", Title: "anything"}}, nil)
	require.Len(t, res, 1)
	assert.True(t, res[0].IsWork)
	assert.Equal(t, DefaultConfidence, res[0].Confidence)
}

func TestExpandKeyword(t *testing.T) {
	assert.ElementsMatch(t, []string{"Meeting", "פגישה"}, ExpandKeyword("Meeting"))
	assert.ElementsMatch(t, []string{"פגישה", "meeting"}, ExpandKeyword("פגישה"))
	// unpaired keyword stays alone
	assert.Equal(t, []string{"standup"}, ExpandKeyword("standup"))
	assert.Nil(t, ExpandKeyword("   "))
}
