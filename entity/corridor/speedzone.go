package corridor

// ResolveDesignSpeed 解析路段设计速度
// 功能：按列表顺序扫描速度分段表，返回第一个包含该路段下标的分段速度
// 参数：segmentIndex-路段下标（0开始），zones-速度分段表，defaultKmh-默认设计速度
// 返回：设计速度（km/h），无分段匹配时返回defaultKmh
// 说明：分段重叠时以列表顺序决定结果，更具体的分段应放在列表前面；
// 空表或越界分段不报错
func ResolveDesignSpeed(segmentIndex int, zones []SpeedZone, defaultKmh float64) float64 {
	for _, zone := range zones {
		if zone.StartIndex <= segmentIndex && segmentIndex < zone.EndIndex {
			return zone.DesignSpeedKmh
		}
	}
	return defaultKmh
}
