package fuzzy

import "math"

// Set 三角形隶属函数，由三个非递减控制点定义
// 功能：将清晰输入映射为[0, 1]的隶属度
// 说明：支撑区间[A, C]外隶属度为0，顶点B处为1；
// A==B或B==C时对应侧退化为肩形平台边界
type Set struct {
	A float64 // 左支撑点
	B float64 // 顶点
	C float64 // 右支撑点
}

// Degree 计算隶属度
// 功能：对输入在三个控制点之间做分段线性插值
// 参数：x-清晰输入值
// 返回：隶属度，范围[0, 1]
func (s Set) Degree(x float64) float64 {
	if x < s.A || x > s.C {
		return 0
	}
	left, right := 1.0, 1.0
	if s.B > s.A {
		left = (x - s.A) / (s.B - s.A)
	}
	if s.C > s.B {
		right = (s.C - x) / (s.C - s.B)
	}
	return math.Min(left, right)
}

// Variable 模糊变量
// 功能：带整数论域与命名隶属函数集合的输入或输出维度
// 说明：构造后不可变，可被并发推理只读共享
type Variable struct {
	Name string         // 变量名
	Lo   float64        // 论域下界
	Hi   float64        // 论域上界
	Sets map[string]Set // 集合名->隶属函数
}

// Fuzzify 模糊化
// 功能：计算输入在该变量所有隶属集合上的隶属度
// 参数：x-清晰输入值
// 返回：集合名->隶属度映射
func (v *Variable) Fuzzify(x float64) map[string]float64 {
	degrees := make(map[string]float64, len(v.Sets))
	for name, set := range v.Sets {
		degrees[name] = set.Degree(x)
	}
	return degrees
}
