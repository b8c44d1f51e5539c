package corridor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/greenwave-oss/entity/corridor"
	"github.com/tsinghua-fib-lab/greenwave-oss/utils/config"
)

func testConfig() ([]config.CorridorConfig, config.Control) {
	control := config.Control{
		SpeedMinKmh:       30,
		SpeedMaxKmh:       60,
		LostTimeS:         12,
		BandwidthFraction: 0.45,
	}
	signals := make([]config.SignalConfig, 3)
	for i := range signals {
		signals[i] = config.SignalConfig{Lat: 0, Lon: float64(i) * lonStep50M}
	}
	reversed := make([]config.SignalConfig, len(signals))
	for i, s := range signals {
		reversed[len(signals)-1-i] = s
	}
	corridors := []config.CorridorConfig{
		{
			ID:              "V1",
			Signals:         signals,
			SpeedZones:      []config.SpeedZoneConfig{{Start: 0, End: 2, SpeedKmh: 40}},
			DefaultSpeedKmh: 60,
		},
		{
			ID:                 "V2",
			Signals:            reversed,
			DefaultSpeedKmh:    60,
			CriticalFlowRatios: []float64{0.95},
		},
	}
	return corridors, control
}

func TestManagerPlanAll(t *testing.T) {
	corridors, control := testConfig()
	m := corridor.NewManager()
	m.Init(corridors, control)
	assert.Equal(t, 2, m.Len())

	plans := m.PlanAll()
	require.Len(t, plans, 2)

	v1 := plans[0]
	assert.Equal(t, "V1", v1.CorridorID)
	require.Len(t, v1.Segments, 2)
	assert.InDelta(t, 57.5, v1.BaseCycleS, 1e-9)
	assert.InDelta(t, 57.5*0.45, v1.TargetBandwidthS, 1e-9)

	// 反向干线独立计算，流量比触发周期上限
	v2 := plans[1]
	assert.Equal(t, "V2", v2.CorridorID)
	require.Len(t, v2.Segments, 2)
	assert.Equal(t, 140.0, v2.BaseCycleS)
}

func TestManagerPlanAllIdempotent(t *testing.T) {
	corridors, control := testConfig()
	m := corridor.NewManager()
	m.Init(corridors, control)
	first := m.PlanAll()
	second := m.PlanAll()
	assert.Equal(t, first, second)
}

func TestManagerGetAndFind(t *testing.T) {
	corridors, control := testConfig()
	m := corridor.NewManager()
	m.Init(corridors, control)

	assert.Equal(t, "V1", m.Get("V1").ID())
	assert.Panics(t, func() { m.Get("V9") })

	all, failed := m.Find(nil)
	assert.Len(t, all, 2)
	assert.Empty(t, failed)

	found, failed := m.Find([]string{"V2", "V9"})
	assert.Len(t, found, 1)
	assert.Equal(t, []string{"V9"}, failed)
}

func TestManagerDegenerateCorridor(t *testing.T) {
	control := config.Control{SpeedMinKmh: 30, SpeedMaxKmh: 60, LostTimeS: 12, BandwidthFraction: 0.45}
	m := corridor.NewManager()
	m.Init([]config.CorridorConfig{
		{ID: "V1", Signals: []config.SignalConfig{{Lat: 0, Lon: 0}}, DefaultSpeedKmh: 60},
	}, control)
	p := m.Get("V1").Plan()
	// 信号灯不足2个时路段为空，周期与带宽照常计算
	assert.Empty(t, p.Segments)
	assert.InDelta(t, 57.5, p.BaseCycleS, 1e-9)
	assert.InDelta(t, 57.5*0.45, p.TargetBandwidthS, 1e-9)
}

func TestPlanRowsCopy(t *testing.T) {
	p := &corridor.Plan{
		CorridorID: "V1",
		Segments:   []corridor.Segment{{CorridorID: "V1", FromID: 0, ToID: 1, OffsetS: 4.5}},
		BaseCycleS: 57.5,
	}
	rows := p.Rows()
	rows[0].OffsetS = 999
	assert.Equal(t, 4.5, p.Segments[0].OffsetS)
}

func TestPlanCumulativeOffsets(t *testing.T) {
	p := &corridor.Plan{
		CorridorID: "V1",
		Segments: []corridor.Segment{
			{OffsetS: 30},
			{OffsetS: 30},
			{OffsetS: 30},
		},
		BaseCycleS: 57.5,
	}
	offsets := p.CumulativeOffsets()
	require.Len(t, offsets, 3)
	assert.InDelta(t, 30.0, offsets[0], 1e-9)
	assert.InDelta(t, 2.5, offsets[1], 1e-9)
	assert.InDelta(t, 32.5, offsets[2], 1e-9)
}
