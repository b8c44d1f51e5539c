package corridor

import "math"

// Plan 一条干线的完整协调方案
// 功能：保存干线的路段序列与干线级周期/带宽标量
// 说明：路段序列归方案独占；周期与带宽是干线级数值，不属于单个路段
type Plan struct {
	CorridorID       string    // 干线标识
	Segments         []Segment // 路段序列（按行车方向）
	BaseCycleS       float64   // 基础信号周期（秒）
	TargetBandwidthS float64   // 目标绿波带宽（秒）
}

// Rows 返回路段记录的副本
// 功能：以平面记录表形式导出路段数据，供表格展示或外部持久化使用
// 说明：返回副本以保持方案对路段序列的独占所有权
func (p *Plan) Rows() []Segment {
	rows := make([]Segment, len(p.Segments))
	copy(rows, p.Segments)
	return rows
}

// CumulativeOffsets 计算各下游信号灯相对起点的累计偏移
// 功能：对路段基准偏移逐段累加并对基础周期取模，得到周期内相对相位
// 返回：与路段序列等长的累计偏移序列（秒）
// 说明：路段内保存的OffsetS仍为点到点行驶时间，本方法仅提供
// 同步绿波所需的派生视图，不修改方案本身
func (p *Plan) CumulativeOffsets() []float64 {
	offsets := make([]float64, len(p.Segments))
	sum := 0.0
	for i, segment := range p.Segments {
		sum += segment.OffsetS
		offsets[i] = math.Mod(sum, p.BaseCycleS)
	}
	return offsets
}
