package corridor

// SignalPoint 干线上的一个物理信号灯
// 功能：按行车方向的循环顺序标识干线上的信号灯
// 说明：由外部提供的坐标序列构建，构建后不可变
type SignalPoint struct {
	LocalID int     // 本地编号，按行车方向从0递增
	Lat     float64 // 纬度（度）
	Lon     float64 // 经度（度）
}

// SpeedZone 设计速度分段
// 功能：声明路段起始下标在[StartIndex, EndIndex)内的路段采用的设计速度
// 说明：分段按列表顺序匹配，先到先得；重叠与越界下标均不报错
type SpeedZone struct {
	StartIndex     int     // 起始路段下标（含）
	EndIndex       int     // 结束路段下标（不含）
	DesignSpeedKmh float64 // 设计速度（km/h）
}

// Segment 相邻信号灯之间的路段协调结果
// 功能：记录一对相邻信号灯之间的距离、设计速度与基准时间
// 说明：派生数据，输入变化时整体重算，不做原地修改；
// OffsetS为点到点行驶时间而非周期内相对相位差，TravelTimeS与其相等
type Segment struct {
	CorridorID     string  // 所属干线标识
	FromID         int     // 上游信号灯本地编号
	ToID           int     // 下游信号灯本地编号
	DistanceM      float64 // 路段距离（米）
	DesignSpeedKmh float64 // 设计速度（km/h）
	OffsetS        float64 // 基准偏移（秒）
	TravelTimeS    float64 // 按设计速度通过路段的行驶时间（秒）
}
