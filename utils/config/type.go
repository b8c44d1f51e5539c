package config

// SignalConfig 信号灯点位配置
// 功能：描述干线上一个物理信号灯的经纬度坐标
// 说明：列表顺序即行车方向上的信号灯顺序，本地ID按顺序从0分配
type SignalConfig struct {
	Lat float64 `yaml:"lat"` // 纬度（度）
	Lon float64 `yaml:"lon"` // 经度（度）
}

// SpeedZoneConfig 设计速度分段配置
// 功能：声明下标在[start, end)内的路段采用的设计速度
// 说明：分段按列表顺序匹配，先到先得；分段重叠不视为错误，
// 调用方应将更具体的分段放在列表前面
type SpeedZoneConfig struct {
	Start    int     `yaml:"start"`     // 起始路段下标（含）
	End      int     `yaml:"end"`       // 结束路段下标（不含）
	SpeedKmh float64 `yaml:"speed_kmh"` // 设计速度（km/h）
}

// CorridorConfig 协调干线配置
// 功能：描述一条干线的信号灯序列与协调参数
// 说明：双向道路按两条独立干线配置（信号灯顺序相反）
type CorridorConfig struct {
	ID                 string            `yaml:"id"`                             // 干线标识
	Signals            []SignalConfig    `yaml:"signals"`                        // 信号灯序列（按行车方向）
	SpeedZones         []SpeedZoneConfig `yaml:"speed_zones,omitempty"`          // 设计速度分段表
	DefaultSpeedKmh    float64           `yaml:"default_speed_kmh,omitempty"`    // 默认设计速度，为0时取全局最高速度
	CriticalFlowRatios []float64         `yaml:"critical_flow_ratios,omitempty"` // 各相位关键流量比（v/s）
}

// Control 全局控制配置
// 功能：定义所有干线共用的协调计算参数
type Control struct {
	SpeedMinKmh       float64 `yaml:"speed_min_kmh"`                // 全局最低设计速度（km/h）
	SpeedMaxKmh       float64 `yaml:"speed_max_kmh"`                // 全局最高设计速度（km/h）
	LostTimeS         float64 `yaml:"lost_time_s,omitempty"`        // 每周期损失时间（秒），为0时取12
	BandwidthFraction float64 `yaml:"bandwidth_fraction,omitempty"` // 目标带宽占周期比例，为0时取0.45
}

// OutputPath 指定结果输出目标的配置（MongoDB）
// 功能：定义协调方案的持久化位置，URI为空则不输出
type OutputPath struct {
	URI string `yaml:"uri,omitempty"` // MongoDB连接字符串
	DB  string `yaml:"db,omitempty"`  // 数据库名
	Col string `yaml:"col,omitempty"` // 集合名
}

// Config 配置文件全量结构
type Config struct {
	Control   Control          `yaml:"control"`          // 全局控制配置
	Corridors []CorridorConfig `yaml:"corridors"`        // 干线列表
	Output    *OutputPath      `yaml:"output,omitempty"` // 结果输出（可选）
}
