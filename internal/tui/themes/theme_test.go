package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/fraudwatch/internal/model"
)

func TestGetTheme(t *testing.T) {
	assert.Equal(t, CatppuccinMocha.Primary, GetTheme("catppuccin-mocha").Primary)
	assert.Equal(t, Default.Primary, GetTheme("default").Primary)
	assert.Equal(t, Default.Primary, GetTheme("unknown").Primary)
}

func TestTheme_ScoreStyle(t *testing.T) {
	theme := Default

	assert.Equal(t, theme.ScoreHigh.GetForeground(), theme.ScoreStyle(model.TierHigh).GetForeground())
	assert.Equal(t, theme.ScoreMedium.GetForeground(), theme.ScoreStyle(model.TierMedium).GetForeground())
	assert.Equal(t, theme.ScoreLow.GetForeground(), theme.ScoreStyle(model.TierLow).GetForeground())
	assert.Equal(t, theme.Error, theme.ScoreStyle(model.TierHigh).GetForeground())
}

func TestTheme_BadgeStyle(t *testing.T) {
	theme := Default

	assert.Equal(t, theme.Error, theme.BadgeStyle(true).GetForeground())
	assert.Equal(t, theme.Success, theme.BadgeStyle(false).GetForeground())
}

func TestNames(t *testing.T) {
	for _, name := range Names() {
		assert.NotEmpty(t, GetTheme(name).Primary)
	}
}
