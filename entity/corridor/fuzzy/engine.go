// 提供绿灯时长的Mamdani模糊推理调整算法
// 由(车辆数估计, 停车时长估计)两个代理输入推理调整后的绿灯时长
package fuzzy

import (
	"errors"

	"github.com/samber/lo"
)

var (
	// ErrNoRuleFired 所有规则激活强度为0，聚合输出为空集
	ErrNoRuleFired = errors.New("fuzzy: no rule fired, aggregated output is empty")
)

// 输入输出变量名
const (
	VarVehicles     = "vehicles"      // 车辆数估计
	VarStopDuration = "stop_duration" // 停车时长估计
	VarGreenTime    = "green_time"    // 绿灯时长
)

// Engine Mamdani模糊推理引擎
// 功能：由车辆数与停车时长两个代理输入推理调整后的绿灯时长
// 说明：变量定义与规则库在构造后不可变，可被并发Compute调用只读共享；
// Compute不修改任何共享状态，相同输入总是产出相同结果
type Engine struct {
	inputs map[string]*Variable // 输入变量
	output *Variable            // 输出变量
	rules  []Rule               // 规则库
}

// NewEngine 创建绿灯时长调整引擎
// 功能：装配固定的输入/输出变量与三条规则
// 返回：初始化完成的引擎实例
// 规则说明：
// 1. 车辆少 且 停车短 -> 绿灯短
// 2. 车辆中 或 停车中 -> 绿灯中
// 3. 车辆多 或 停车长 -> 绿灯长
func NewEngine() *Engine {
	vehicles := &Variable{Name: VarVehicles, Lo: 0, Hi: 50, Sets: map[string]Set{
		"low":    {A: 0, B: 0, C: 15},
		"medium": {A: 10, B: 25, C: 40},
		"high":   {A: 35, B: 50, C: 50},
	}}
	stopDuration := &Variable{Name: VarStopDuration, Lo: 0, Hi: 60, Sets: map[string]Set{
		"short":  {A: 0, B: 0, C: 20},
		"medium": {A: 15, B: 30, C: 45},
		"long":   {A: 40, B: 60, C: 60},
	}}
	greenTime := &Variable{Name: VarGreenTime, Lo: 10, Hi: 90, Sets: map[string]Set{
		"short":  {A: 10, B: 10, C: 30},
		"medium": {A: 25, B: 45, C: 65},
		"long":   {A: 60, B: 90, C: 90},
	}}
	return &Engine{
		inputs: map[string]*Variable{
			VarVehicles:     vehicles,
			VarStopDuration: stopDuration,
		},
		output: greenTime,
		rules: []Rule{
			{When: []Term{{VarVehicles, "low"}, {VarStopDuration, "short"}}, Op: OpAnd, Then: "short"},
			{When: []Term{{VarVehicles, "medium"}, {VarStopDuration, "medium"}}, Op: OpOr, Then: "medium"},
			{When: []Term{{VarVehicles, "high"}, {VarStopDuration, "long"}}, Op: OpOr, Then: "long"},
		},
	}
}

// Compute 推理调整后的绿灯时长
// 功能：模糊化 -> 规则求值 -> 聚合 -> 重心法解模糊 -> 整数化
// 参数：vehicles-车辆数估计，stopDuration-停车时长估计
// 返回：绿灯时长（秒，[10, 90]内整数）与错误信息
// 算法说明：
// 1. 对两个输入分别计算各隶属集合的隶属度
// 2. 规则激活强度按AND=min/OR=max求值，以Mamdani最小推理截取对应输出集合
// 3. 输出论域按整数步长采样，聚合取各截取集合的逐点最大值
// 4. 重心法（面积中心）解模糊
// 5. 结果夹取到论域内并截断为整数
// 说明：两个输入都在论域外时所有规则激活强度为0，聚合输出为空集，
// 此时返回论域中点并以ErrNoRuleFired提示调用方，不做除零运算
func (e *Engine) Compute(vehicles, stopDuration float64) (int, error) {
	degrees := map[string]map[string]float64{
		VarVehicles:     e.inputs[VarVehicles].Fuzzify(vehicles),
		VarStopDuration: e.inputs[VarStopDuration].Fuzzify(stopDuration),
	}
	strengths := lo.Map(e.rules, func(r Rule, _ int) float64 {
		return r.strength(degrees)
	})

	num, den := 0.0, 0.0
	for x := e.output.Lo; x <= e.output.Hi; x++ {
		mu := 0.0
		for i, r := range e.rules {
			clipped := e.output.Sets[r.Then].Degree(x)
			if clipped > strengths[i] {
				clipped = strengths[i]
			}
			if clipped > mu {
				mu = clipped
			}
		}
		num += x * mu
		den += mu
	}
	if den == 0 {
		return int((e.output.Lo + e.output.Hi) / 2), ErrNoRuleFired
	}
	return int(lo.Clamp(num/den, e.output.Lo, e.output.Hi)), nil
}
