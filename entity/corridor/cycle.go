package corridor

import "github.com/samber/lo"

// 周期与带宽计算的边界参数
const (
	minCycleS          = 40.0  // 周期下限（秒）
	maxCycleS          = 140.0 // 周期上限（秒）
	minSaturation      = 0.2   // 饱和度下限
	maxSaturation      = 0.9   // 饱和度上限
	fallbackSaturation = 0.6   // 无流量数据时假定的中等饱和度
	minBandFraction    = 0.3   // 带宽占周期比例下限
	maxBandFraction    = 0.7   // 带宽占周期比例上限

	// DefaultLostTimeS 每周期损失时间默认值（秒），覆盖红灯与黄灯损失
	DefaultLostTimeS = 12.0
	// DefaultBandwidthFraction 目标带宽占周期比例默认值
	DefaultBandwidthFraction = 0.45
)

// EstimateCycle 估算基础信号周期
// 功能：采用简化Webster公式由关键流量比估算周期长度
// 参数：criticalFlowRatios-各相位关键流量比（v/s），lostTimeS-每周期损失时间（秒）
// 返回：周期长度（秒），范围[40, 140]
// 算法说明：
// 1. 饱和度y取关键流量比之和并夹取到[0.2, 0.9]，无数据时取0.6
// 2. y>=1时回落到0.9，防止公式发散（上一步夹取上界调整后仍然成立的保护）
// 3. C0 = (1.5*L + 5) / (1 - y)，饱和度越低周期越短
// 4. 结果夹取到[40, 140]
// 说明：任意输入（含负数或大于1的流量比）均被夹取吸收，不报错
func EstimateCycle(criticalFlowRatios []float64, lostTimeS float64) float64 {
	y := fallbackSaturation
	if len(criticalFlowRatios) > 0 {
		y = lo.Clamp(lo.Sum(criticalFlowRatios), minSaturation, maxSaturation)
	}
	if y >= 1 {
		y = maxSaturation
	}
	c0 := (1.5*lostTimeS + 5.0) / (1.0 - y)
	return lo.Clamp(c0, minCycleS, maxCycleS)
}

// TargetBandwidth 计算目标绿波带宽
// 功能：取周期的固定比例作为可维持协调车速通过的带宽目标
// 参数：cycleS-周期长度（秒），fraction-带宽占周期比例
// 返回：目标带宽（秒），比例先夹取到[0.3, 0.7]再相乘
func TargetBandwidth(cycleS, fraction float64) float64 {
	return cycleS * lo.Clamp(fraction, minBandFraction, maxBandFraction)
}
