package config

import (
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// log 配置模块的日志记录器
var log = logrus.WithField("module", "config")

// 速度与参数归一化边界
const (
	absoluteMinSpeedKmh = 5.0   // 设计速度绝对下限（km/h）
	absoluteMaxSpeedKmh = 110.0 // 设计速度绝对上限（km/h）
	defaultMinSpeedKmh  = 30.0  // 未配置时的全局最低速度
	defaultMaxSpeedKmh  = 60.0  // 未配置时的全局最高速度
	defaultLostTimeS    = 12.0  // 未配置时的每周期损失时间（秒）
	defaultBandFraction = 0.45  // 未配置时的带宽占比
)

// RuntimeConfig 运行时配置
// 功能：存储归一化后的运行时配置，速度越界、缺省参数等在此统一处理
// 说明：核心计算只消费归一化后的数值，不再各自校验边界
type RuntimeConfig struct {
	All       Config           // 全部原始配置
	C         Control          // 归一化后的全局控制配置
	Corridors []CorridorConfig // 归一化后的干线配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：创建运行时配置对象，进行配置验证与参数归一化
// 参数：config-原始配置对象
// 返回：初始化的运行时配置指针
// 算法说明：
// 1. 全局速度边界：下限夹取到[5, 上限]，上限夹取到[下限, 110]，未配置时取30/60
// 2. 损失时间与带宽占比：为0时取默认值12秒/0.45
// 3. 干线默认速度：未配置时取全局最高速度，配置后夹取到全局边界内
// 4. 速度分段：分段速度夹取到全局边界内
// 5. 干线ID：为空或重复时panic
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}
	rc.All = config
	rc.C = config.Control

	if rc.C.SpeedMinKmh == 0 {
		rc.C.SpeedMinKmh = defaultMinSpeedKmh
	}
	if rc.C.SpeedMaxKmh == 0 {
		rc.C.SpeedMaxKmh = defaultMaxSpeedKmh
	}
	rc.C.SpeedMinKmh = lo.Clamp(rc.C.SpeedMinKmh, absoluteMinSpeedKmh, rc.C.SpeedMaxKmh)
	rc.C.SpeedMaxKmh = lo.Clamp(rc.C.SpeedMaxKmh, rc.C.SpeedMinKmh, absoluteMaxSpeedKmh)
	if rc.C.LostTimeS == 0 {
		rc.C.LostTimeS = defaultLostTimeS
	}
	if rc.C.BandwidthFraction == 0 {
		rc.C.BandwidthFraction = defaultBandFraction
	}

	ids := make(map[string]struct{})
	rc.Corridors = make([]CorridorConfig, len(config.Corridors))
	for i, corridor := range config.Corridors {
		if corridor.ID == "" {
			log.Panicf("corridor %d has empty id, please check config", i)
		}
		if _, ok := ids[corridor.ID]; ok {
			log.Panicf("corridors have duplicated id %s, please check config", corridor.ID)
		}
		ids[corridor.ID] = struct{}{}

		if corridor.DefaultSpeedKmh == 0 {
			corridor.DefaultSpeedKmh = rc.C.SpeedMaxKmh
		}
		corridor.DefaultSpeedKmh = lo.Clamp(corridor.DefaultSpeedKmh, rc.C.SpeedMinKmh, rc.C.SpeedMaxKmh)
		zones := make([]SpeedZoneConfig, len(corridor.SpeedZones))
		for j, zone := range corridor.SpeedZones {
			zone.SpeedKmh = lo.Clamp(zone.SpeedKmh, rc.C.SpeedMinKmh, rc.C.SpeedMaxKmh)
			zones[j] = zone
		}
		corridor.SpeedZones = zones
		rc.Corridors[i] = corridor
	}

	return rc
}
