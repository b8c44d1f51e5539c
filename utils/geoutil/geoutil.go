// 地理计算工具，提供经纬度坐标间的球面距离计算
package geoutil

import "math"

// EarthRadiusM 地球平均半径（米）
const EarthRadiusM = 6371e3

// DistanceM 计算两个经纬度坐标间的大圆距离
// 功能：采用haversine公式计算球面上两点间的最短距离
// 参数：lat1/lon1-起点纬度和经度（度），lat2/lon2-终点纬度和经度（度）
// 返回：距离（米），非负，两点重合时为0
func DistanceM(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusM * c
}
