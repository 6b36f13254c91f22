package clicker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Casino_Go/internal/domain"
)

func TestNextCost_Sequences(t *testing.T) {
	tests := []struct {
		track string
		start int
		want  []int
	}{
		{TrackClick, 10, []int{15, 22, 33, 49, 73, 109}},
		{TrackAuto, 50, []int{90, 162, 291, 523}},
		{TrackFactory, 200, []int{400, 800, 1600}},
		{TrackBank, 1000, []int{2500, 6250, 15625}},
	}

	for _, tt := range tests {
		t.Run(tt.track, func(t *testing.T) {
			cost := tt.start
			for _, want := range tt.want {
				next, err := NextCost(tt.track, cost)
				require.NoError(t, err)
				assert.Equal(t, want, next, "after %d", cost)
				cost = next
			}
		})
	}
}

func TestNextCost_UnknownTrack(t *testing.T) {
	_, err := NextCost("casino", 10)
	assert.True(t, errors.Is(err, domain.ErrInvalidParameters))
}

func TestApplyUpgrade(t *testing.T) {
	tests := []struct {
		track   string
		level   int
		check   func(t *testing.T, d *domain.ClickerData)
		passive int
	}{
		{TrackClick, 2, func(t *testing.T, d *domain.ClickerData) {
			assert.Equal(t, 2, d.ClickPower)
			assert.Equal(t, 15, d.ClickCost)
		}, 0},
		{TrackAuto, 1, func(t *testing.T, d *domain.ClickerData) {
			assert.Equal(t, 90, d.AutoCost)
			assert.Equal(t, 1, d.ClickPower)
		}, 1},
		{TrackFactory, 1, func(t *testing.T, d *domain.ClickerData) {
			assert.Equal(t, 400, d.FactoryCost)
		}, 5},
		{TrackBank, 1, func(t *testing.T, d *domain.ClickerData) {
			assert.Equal(t, 2500, d.BankCost)
		}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.track, func(t *testing.T) {
			data := domain.NewClickerData("u1")

			level, err := ApplyUpgrade(data, tt.track)
			require.NoError(t, err)

			assert.Equal(t, tt.level, level)
			tt.check(t, data)
			assert.Equal(t, tt.passive, data.PassiveIncome())
		})
	}
}

func TestApplyUpgrade_UnknownTrackLeavesDataAlone(t *testing.T) {
	data := domain.NewClickerData("u1")

	_, err := ApplyUpgrade(data, "rocket")

	assert.True(t, errors.Is(err, domain.ErrInvalidParameters))
	assert.Equal(t, domain.NewClickerData("u1"), data)
}
