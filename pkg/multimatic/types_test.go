package multimatic_test

import (
	"testing"
	"time"

	"github.com/homeclimate-io/multimatic/pkg/multimatic"
	"github.com/stretchr/testify/assert"
)

func TestZoneHeatingActiveMode(t *testing.T) {
	t.Parallel()

	heating := multimatic.ZoneHeating{
		TargetHigh: 21.0,
		TargetLow:  16.5,
	}

	t.Run("night uses setback target", func(t *testing.T) {
		t.Parallel()

		heating := heating
		heating.OperatingMode = multimatic.ModeNight

		active := heating.ActiveMode()
		assert.Equal(t, multimatic.ModeNight, active.Current)
		assert.InDelta(t, 16.5, active.Target, 0.001)
	})

	t.Run("day uses comfort target", func(t *testing.T) {
		t.Parallel()

		heating := heating
		heating.OperatingMode = multimatic.ModeDay

		active := heating.ActiveMode()
		assert.Equal(t, multimatic.ModeDay, active.Current)
		assert.InDelta(t, 21.0, active.Target, 0.001)
	})

	t.Run("off falls back to minimum", func(t *testing.T) {
		t.Parallel()

		heating := heating
		heating.OperatingMode = multimatic.ModeOff

		active := heating.ActiveMode()
		assert.Equal(t, multimatic.ModeOff, active.Current)
		assert.InDelta(t, multimatic.ZoneMinTargetTemp, active.Target, 0.001)
	})
}

func TestZoneActiveMode(t *testing.T) {
	t.Parallel()

	zone := multimatic.Zone{
		ID: "zone-1",
		Heating: multimatic.ZoneHeating{
			OperatingMode: multimatic.ModeDay,
			TargetHigh:    20.0,
			TargetLow:     15.0,
		},
	}

	t.Run("without veto follows heating", func(t *testing.T) {
		t.Parallel()

		active := zone.ActiveMode()
		assert.Equal(t, multimatic.ModeDay, active.Current)
		assert.InDelta(t, 20.0, active.Target, 0.001)
	})

	t.Run("quick veto wins", func(t *testing.T) {
		t.Parallel()

		zone := zone
		zone.QuickVeto = &multimatic.QuickVeto{Target: 23.5}

		active := zone.ActiveMode()
		assert.Equal(t, multimatic.ModeQuickVeto, active.Current)
		assert.InDelta(t, 23.5, active.Target, 0.001)
	})
}

func TestHotWaterActiveMode(t *testing.T) {
	t.Parallel()

	t.Run("on heats to target", func(t *testing.T) {
		t.Parallel()

		hotWater := &multimatic.HotWater{OperatingMode: multimatic.ModeOn, TargetHigh: 55.0}

		active := hotWater.ActiveMode()
		assert.Equal(t, multimatic.ModeOn, active.Current)
		assert.InDelta(t, 55.0, active.Target, 0.001)
	})

	t.Run("off falls back to frost protection", func(t *testing.T) {
		t.Parallel()

		hotWater := &multimatic.HotWater{OperatingMode: multimatic.ModeOff, TargetHigh: 55.0}

		active := hotWater.ActiveMode()
		assert.Equal(t, multimatic.ModeOff, active.Current)
		assert.InDelta(t, multimatic.FrostProtectionTemp, active.Target, 0.001)
	})
}

func TestHolidayModeIsApplied(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	holiday := &multimatic.HolidayMode{
		Active: true,
		Start:  time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, holiday.IsApplied(now))

	inactive := *holiday
	inactive.Active = false
	assert.False(t, inactive.IsApplied(now))

	assert.False(t, holiday.IsApplied(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, holiday.IsApplied(time.Date(2026, 8, 9, 0, 0, 0, 0, time.UTC)))

	var nilHoliday *multimatic.HolidayMode

	assert.False(t, nilHoliday.IsApplied(now))
}

func TestHvacSyncStatePending(t *testing.T) {
	t.Parallel()

	pending := &multimatic.HvacSyncState{State: "PENDING"}
	assert.True(t, pending.Pending())

	synced := &multimatic.HvacSyncState{State: "SYNCED"}
	assert.False(t, synced.Pending())
}

func TestSupportsMode(t *testing.T) {
	t.Parallel()

	assert.True(t, multimatic.SupportsMode(multimatic.HotWaterModes, multimatic.ModeOn))
	assert.True(t, multimatic.SupportsMode(multimatic.HotWaterModes, multimatic.ModeAuto))
	assert.False(t, multimatic.SupportsMode(multimatic.HotWaterModes, multimatic.ModeNight))

	assert.True(t, multimatic.SupportsMode(multimatic.ZoneHeatingModes, multimatic.ModeNight))
	assert.False(t, multimatic.SupportsMode(multimatic.ZoneHeatingModes, multimatic.ModeManual))

	assert.True(t, multimatic.SupportsMode(multimatic.RoomModes, multimatic.ModeManual))
	assert.False(t, multimatic.SupportsMode(multimatic.RoomModes, multimatic.ModeDay))
}
