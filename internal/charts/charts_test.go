package charts

import (
	"bytes"
	"testing"

	"budget_bloom/internal/domain"
	"budget_bloom/internal/insights"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestCategoryPie(t *testing.T) {
	img, err := CategoryPie([]domain.CategoryTotal{
		{Category: domain.CategoryFood, Total: 30},
		{Category: domain.CategoryHealth, Total: 10},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))
}

func TestCategoryPieEmpty(t *testing.T) {
	_, err := CategoryPie(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestDailyBars(t *testing.T) {
	img, err := DailyBars([]insights.DailyTotal{
		{Date: "2025-03-10", Amount: 12},
		{Date: "2025-03-11", Amount: 0},
		{Date: "2025-03-12", Amount: 40},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))

	_, err = DailyBars([]insights.DailyTotal{{Date: "2025-03-10"}})
	assert.ErrorIs(t, err, ErrNoData)
}
