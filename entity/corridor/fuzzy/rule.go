package fuzzy

import (
	"math"

	"git.fiblab.net/general/common/v2/mathutil"
)

// Operator 规则前件的组合方式
type Operator int

const (
	OpAnd Operator = iota // AND：取各项隶属度的最小值
	OpOr                  // OR：取各项隶属度的最大值
)

// Term 规则前件中的一项：某输入变量落在某隶属集合
type Term struct {
	Variable string // 输入变量名
	Set      string // 隶属集合名
}

// Rule 模糊规则
// 功能：前件按AND/OR组合求激活强度，按Mamdani最小推理截取后件输出集合
// 说明：规则库以数据表形式声明（变量、集合、组合方式、目标集合），
// 推理算法与具体规则解耦，替换规则集无需改动推理过程
type Rule struct {
	When []Term   // 前件项列表
	Op   Operator // 前件组合方式
	Then string   // 后件输出集合名
}

// strength 计算规则激活强度
// 功能：按组合方式归并前件各项的隶属度
// 参数：degrees-变量名->（集合名->隶属度）的模糊化结果
// 返回：激活强度，范围[0, 1]
func (r *Rule) strength(degrees map[string]map[string]float64) float64 {
	switch r.Op {
	case OpAnd:
		s := mathutil.INF
		for _, term := range r.When {
			s = math.Min(s, degrees[term.Variable][term.Set])
		}
		return s
	default:
		s := 0.0
		for _, term := range r.When {
			s = math.Max(s, degrees[term.Variable][term.Set])
		}
		return s
	}
}
