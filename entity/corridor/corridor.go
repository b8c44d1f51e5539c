package corridor

import (
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/greenwave-oss/utils/config"
	"github.com/tsinghua-fib-lab/greenwave-oss/utils/geoutil"
)

// minSpeedMs 设计速度换算下限（米/秒），防止除零
const minSpeedMs = 0.1

// Corridor 协调干线实体
// 功能：保存一条干线的信号灯序列与协调参数，提供时序方案计算
// 说明：构建后不可变，方案计算是对自身输入的纯函数；
// 双向道路对应的两条干线互不依赖，可并行计算
type Corridor struct {
	id                 string        // 干线标识
	signals            []SignalPoint // 信号灯序列（按行车方向）
	zones              []SpeedZone   // 设计速度分段表
	defaultSpeedKmh    float64       // 默认设计速度（km/h）
	criticalFlowRatios []float64     // 各相位关键流量比
	lostTimeS          float64       // 每周期损失时间（秒）
	bandwidthFraction  float64       // 目标带宽占周期比例
}

// newCorridor 创建并初始化一个新的Corridor实例
// 功能：根据配置创建干线对象，按顺序分配信号灯本地编号
// 参数：pb-干线配置，control-全局控制配置
// 返回：初始化完成的Corridor实例
// 说明：信号灯少于2个不是错误，方案中路段序列为空但周期与带宽照常计算
func newCorridor(pb config.CorridorConfig, control config.Control) *Corridor {
	signals := make([]SignalPoint, len(pb.Signals))
	for i, s := range pb.Signals {
		signals[i] = SignalPoint{LocalID: i, Lat: s.Lat, Lon: s.Lon}
	}
	zones := lo.Map(pb.SpeedZones, func(z config.SpeedZoneConfig, _ int) SpeedZone {
		return SpeedZone{StartIndex: z.Start, EndIndex: z.End, DesignSpeedKmh: z.SpeedKmh}
	})
	if len(signals) < 2 {
		log.Warnf("corridor %s has %d signals, plan will have no segments", pb.ID, len(signals))
	}
	return &Corridor{
		id:                 pb.ID,
		signals:            signals,
		zones:              zones,
		defaultSpeedKmh:    pb.DefaultSpeedKmh,
		criticalFlowRatios: pb.CriticalFlowRatios,
		lostTimeS:          control.LostTimeS,
		bandwidthFraction:  control.BandwidthFraction,
	}
}

// ID 获取干线标识
func (c *Corridor) ID() string {
	return c.id
}

// BuildSegments 构建路段时序序列
// 功能：对相邻信号灯逐对计算距离、设计速度与基准偏移
// 参数：corridorID-干线标识，signals-信号灯序列，zones-速度分段表，defaultKmh-默认设计速度
// 返回：路段序列，信号灯少于2个时为空
// 算法说明：
// 1. 距离取两信号灯坐标的大圆距离
// 2. 设计速度按路段下标查速度分段表，无匹配时取默认速度
// 3. 速度换算为米/秒，非正时取下限0.1米/秒
// 4. 基准偏移 = 距离 / 速度，行驶时间与其相等
// 说明：所有数值异常均夹取降级，不报错
func BuildSegments(corridorID string, signals []SignalPoint, zones []SpeedZone, defaultKmh float64) []Segment {
	if len(signals) < 2 {
		return []Segment{}
	}
	segments := make([]Segment, 0, len(signals)-1)
	for k := 0; k+1 < len(signals); k++ {
		from := signals[k]
		to := signals[k+1]
		distanceM := geoutil.DistanceM(from.Lat, from.Lon, to.Lat, to.Lon)
		speedKmh := ResolveDesignSpeed(k, zones, defaultKmh)
		speedMs := speedKmh * 1000.0 / 3600.0
		if speedMs <= 0 {
			speedMs = minSpeedMs
		}
		offsetS := distanceM / speedMs
		segments = append(segments, Segment{
			CorridorID:     corridorID,
			FromID:         from.LocalID,
			ToID:           to.LocalID,
			DistanceM:      distanceM,
			DesignSpeedKmh: speedKmh,
			OffsetS:        offsetS,
			TravelTimeS:    offsetS,
		})
	}
	return segments
}

// Plan 生成干线协调方案
// 功能：组合路段构建、周期估算与带宽计算，产出完整方案
// 返回：新构造的协调方案，调用方独占所有权
// 说明：相同输入重复调用产出完全一致的结果，无隐藏状态
func (c *Corridor) Plan() *Plan {
	cycleS := EstimateCycle(c.criticalFlowRatios, c.lostTimeS)
	return &Plan{
		CorridorID:       c.id,
		Segments:         BuildSegments(c.id, c.signals, c.zones, c.defaultSpeedKmh),
		BaseCycleS:       cycleS,
		TargetBandwidthS: TargetBandwidth(cycleS, c.bandwidthFraction),
	}
}
