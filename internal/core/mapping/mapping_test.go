package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-fanout/internal/core/domain"
)

func TestObjectiveFallback(t *testing.T) {
	assert.Equal(t, "OUTCOME_SALES", MetaObjective(domain.ObjectiveConversions))
	assert.Equal(t, "OUTCOME_TRAFFIC", MetaObjective("unknown"))
	assert.Equal(t, "WEBSITE_VISIT", LinkedInObjective(domain.ObjectiveAppPromotion))
	assert.Equal(t, "TRAFFIC", TikTokObjective(""))

	goal, billing := TikTokOptimization(domain.ObjectiveAwareness)
	assert.Equal(t, "REACH", goal)
	assert.Equal(t, "CPM", billing)
}

func TestEveryObjectiveIsMapped(t *testing.T) {
	for _, o := range domain.Objectives {
		_, ok := objectives[o]
		assert.True(t, ok, "objective %s has no mapping", o)
	}
}

func TestCallToActionFallback(t *testing.T) {
	assert.Equal(t, "SHOP_NOW", MetaCallToAction(domain.CTAShopNow))
	assert.Equal(t, "LEARN_MORE", MetaCallToAction(""))
	assert.Equal(t, "WATCH_NOW", TikTokCallToAction(domain.CTAWatchMore))
	assert.Equal(t, "Learn more", CallToActionLabel("bogus"))
}

func TestInterestNamespaces(t *testing.T) {
	ref, ok := Interest(domain.PlatformMeta, "  TECH ")
	require.True(t, ok)
	assert.Equal(t, "Technology", ref.Name)
	assert.Equal(t, "6003985771306", ref.ID)

	// Fashion has no LinkedIn equivalent.
	_, ok = Interest(domain.PlatformLinkedIn, "fashion")
	assert.False(t, ok)

	_, ok = Interest(domain.PlatformMeta, "underwater basket weaving")
	assert.False(t, ok)
}

func TestInterestsDropsUnresolvedAndDuplicates(t *testing.T) {
	refs := Interests(domain.PlatformTikTok, []string{"gaming", "video games", "nope", "music"})
	require.Len(t, refs, 2)
	assert.Equal(t, "Gaming", refs[0].Name)
	assert.Equal(t, "Music", refs[1].Name)
}

func TestLocationLookup(t *testing.T) {
	ref, ok := Location(domain.PlatformMeta, domain.LocationCountry, "usa")
	require.True(t, ok)
	assert.Equal(t, "US", ref.ID)

	// Same name resolves differently per type.
	city, ok := Location(domain.PlatformGoogle, domain.LocationCity, "New York")
	require.True(t, ok)
	region, ok := Location(domain.PlatformGoogle, domain.LocationRegion, "New York")
	require.True(t, ok)
	assert.NotEqual(t, city.ID, region.ID)

	_, ok = Location(domain.PlatformTikTok, domain.LocationCity, "Austin")
	assert.False(t, ok)
}

func TestZipKey(t *testing.T) {
	key, ok := ZipKey("United States", " 94105 ")
	require.True(t, ok)
	assert.Equal(t, "US:94105", key)

	_, ok = ZipKey("", "94105")
	assert.False(t, ok)
}

func TestLanguage(t *testing.T) {
	id, ok := Language(domain.PlatformGoogle, "English")
	require.True(t, ok)
	assert.Equal(t, "1000", id)

	id, ok = Language(domain.PlatformTikTok, "es")
	require.True(t, ok)
	assert.Equal(t, "es", id)

	_, ok = Language(domain.PlatformLinkedIn, "hindi")
	assert.False(t, ok)
}
