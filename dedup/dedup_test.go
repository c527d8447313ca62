package dedup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "acme", Normalize("Acme Ltd."))
	assert.Equal(t, "acme", Normalize("  ACME   LTD "))
	assert.Equal(t, "acmes", Normalize("Acme's."))
	assert.Equal(t, "tel aviv media", Normalize("Tel-Aviv   Media, Inc."))
	// Hebrew Ltd. equivalent
	assert.Equal(t, "חברת הדגמה", Normalize(`חברת הדגמה בע"מ`))
	assert.Equal(t, "חברת הדגמה", Normalize("חברת הדגמה בע״מ"))
	// a name that is only a suffix keeps its token
	assert.Equal(t, "ltd", Normalize("Ltd."))
}

func TestGroupDuplicates(t *testing.T) {
	now := time.Now()
	usages := []NameUsage{
		{Name: "Acme Ltd.", Count: 3, LastUsed: now},
		{Name: "acme", Count: 5, LastUsed: now},
		{Name: "ACME LTD", Count: 1, LastUsed: now},
		{Name: "Solo Client", Count: 9, LastUsed: now},
		{Name: "Beta Inc", Count: 4, LastUsed: now},
		{Name: "beta", Count: 4, LastUsed: now},
	}

	groups := GroupDuplicates(usages)
	require.Len(t, groups, 2)

	// acme group has the larger total usage (9 vs 8) and all 3 variants
	assert.Equal(t, "acme", groups[0].NormalizedName)
	assert.Equal(t, 9, groups[0].TotalCount)
	require.Len(t, groups[0].Variants, 3)
	// most used spelling first
	assert.Equal(t, "acme", groups[0].Variants[0].Name)

	assert.Equal(t, "beta", groups[1].NormalizedName)
	assert.Equal(t, 8, groups[1].TotalCount)
}

func TestGroupDuplicatesLoneNameNoGroup(t *testing.T) {
	groups := GroupDuplicates([]NameUsage{{Name: "Unique Co", Count: 2}})
	assert.Empty(t, groups)

	assert.Empty(t, GroupDuplicates(nil))
}
