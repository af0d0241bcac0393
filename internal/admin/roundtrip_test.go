package admin

import (
	"context"
	"testing"

	"portfolio-backend-go/internal/content"
	"portfolio-backend-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercises the full hero lifecycle across session, store and resolver:
// default content, an admin edit, then a reset back to defaults.
func TestHeroEditAndResetRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := &stubSource{}
	source.updateHeroFn = func(in models.HeroContent) *models.HeroContent {
		if in.ID == "" {
			in.ID = "hero-1"
		}
		source.hero = &in
		return &in
	}
	source.resetAllFn = func(kind content.Kind) bool {
		if kind == content.KindHero {
			source.hero = nil
		}
		return true
	}
	resolver := content.NewResolver(source)
	session := NewSession(source)
	session.LoadAll(ctx)

	// empty store renders the built-in default
	view := resolver.Hero(ctx)
	assert.Equal(t, content.SourceDefault, view.Source)
	assert.Equal(t, "Surya", view.Hero.Headline)

	// the admin edits and commits the headline
	require.NoError(t, session.EditField(content.KindHero, "headline", "Jane Doe"))
	require.NoError(t, session.CommitSingleton(ctx, content.KindHero))

	view = resolver.Hero(ctx)
	assert.Equal(t, content.SourceStore, view.Source)
	assert.Equal(t, "Jane Doe", view.Hero.Headline)
	assert.Equal(t, "hero-1", view.Hero.ID)

	// reset wipes the row and the public site falls back again
	require.NoError(t, session.ResetEntity(ctx, content.KindHero, true))

	view = resolver.Hero(ctx)
	assert.Equal(t, content.SourceDefault, view.Source)
	assert.Equal(t, "Surya", view.Hero.Headline)
	assert.Nil(t, session.Drafts().Hero)
}
