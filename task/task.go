package task

import (
	"math"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/greenwave-oss/entity/corridor"
	"github.com/tsinghua-fib-lab/greenwave-oss/entity/corridor/fuzzy"
	"github.com/tsinghua-fib-lab/greenwave-oss/utils/config"
	"github.com/tsinghua-fib-lab/greenwave-oss/utils/output"
)

// log 任务模块的日志记录器
var log = logrus.WithField("module", "task")

// Context 协调计算任务上下文
// 功能：包含一次干线协调计算的所有组件和状态，替代全局变量
// 说明：管理配置、干线管理器、模糊引擎与结果输出
type Context struct {

	// 任务名
	job string
	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig
	// Corridor管理器
	corridorManager *corridor.CorridorManager
	// 绿灯时长调整引擎
	engine *fuzzy.Engine
	// 结果写入器（未配置输出时为nil）
	writer *output.Writer
}

// Result 单条干线的计算结果
// 功能：组合协调方案与调整后的绿灯序列
// 说明：绿灯序列与路段序列等长同序，路段为空时序列为空
type Result struct {
	Plan           *corridor.Plan // 协调方案
	AdjustedGreenS []int          // 调整后的绿灯时长序列（秒）
}

// NewContext 创建新的协调计算任务上下文
// 功能：初始化任务的所有组件和配置
// 参数：job-任务名称，c-配置对象
// 返回：初始化完成的Context实例
// 算法说明：
// 1. 归一化配置（速度边界、缺省参数）
// 2. 初始化干线管理器并装载所有干线
// 3. 创建绿灯时长调整引擎
// 4. 按配置创建结果写入器
func NewContext(job string, c config.Config) *Context {
	rc := config.NewRuntimeConfig(c)
	manager := corridor.NewManager()
	manager.Init(rc.Corridors, rc.C)
	t := &Context{
		job:             job,
		runtimeConfig:   rc,
		corridorManager: manager,
		engine:          fuzzy.NewEngine(),
	}
	if c.Output != nil && c.Output.URI != "" {
		t.writer = output.NewWriter(job, *c.Output)
	}
	return t
}

// CorridorManager 获取干线管理器
func (t *Context) CorridorManager() *corridor.CorridorManager {
	return t.corridorManager
}

// Run 执行一次完整的协调计算
// 功能：计算所有干线的协调方案并做绿灯时长模糊调整
// 返回：结果列表，顺序与干线配置顺序一致
// 算法说明：
// 1. 并行计算所有干线的协调方案
// 2. 对每个路段的基准行驶时间推导代理输入并做模糊调整
// 3. 以表格形式输出结果
// 4. 按配置写入MongoDB，写入失败只记录日志不影响计算结果
func (t *Context) Run() []*Result {
	plans := t.corridorManager.PlanAll()
	results := parallel.GoMap(plans, func(p *corridor.Plan) *Result {
		return &Result{Plan: p, AdjustedGreenS: t.adjust(p)}
	})
	for _, r := range results {
		t.logResult(r)
	}
	if t.writer != nil {
		defer t.writer.Close()
		for _, r := range results {
			if err := t.writer.WritePlan(r.Plan, r.AdjustedGreenS); err != nil {
				log.Errorf("failed to write plan of corridor %s: %v", r.Plan.CorridorID, err)
			}
		}
	}
	return results
}

// ProxyInputs 由基准行驶时间推导模糊控制器的代理输入
// 功能：车辆数估计 = min(50, floor(t/2))，停车时长估计 = clamp(70-t, 5, 60)
// 参数：baselineS-路段基准行驶时间（秒）
// 返回：车辆数估计与停车时长估计
// 说明：两者为真实检测数据的启发式替代量，并非实测值；
// 控制器本身与输入来源无关
func ProxyInputs(baselineS float64) (vehicles, stopDuration float64) {
	vehicles = math.Min(50, math.Floor(baselineS/2))
	stopDuration = lo.Clamp(70-baselineS, 5, 60)
	return
}

// adjust 对方案中每个路段计算调整后的绿灯时长
// 功能：逐路段推导代理输入并调用模糊引擎
// 参数：p-协调方案
// 返回：与路段序列等长同序的绿灯时长序列
func (t *Context) adjust(p *corridor.Plan) []int {
	return lo.Map(p.Segments, func(s corridor.Segment, _ int) int {
		vehicles, stopDuration := ProxyInputs(s.TravelTimeS)
		greenS, err := t.engine.Compute(vehicles, stopDuration)
		if err != nil {
			log.Warnf("corridor %s segment %d->%d: %v, fallback to %ds",
				p.CorridorID, s.FromID, s.ToID, err, greenS)
		}
		return greenS
	})
}

// logResult 以表格形式输出单条干线的结果
func (t *Context) logResult(r *Result) {
	p := r.Plan
	log.Infof("corridor %s: cycle %.1fs, target bandwidth %.1fs, %d segments",
		p.CorridorID, p.BaseCycleS, p.TargetBandwidthS, len(p.Segments))
	offsets := p.CumulativeOffsets()
	for i, s := range p.Rows() {
		log.Infof("  %s %d->%d dist=%.0fm vd=%.1fkm/h offset=%.1fs t=%.1fs cum=%.1fs green=%ds",
			s.CorridorID, s.FromID, s.ToID, s.DistanceM, s.DesignSpeedKmh,
			s.OffsetS, s.TravelTimeS, offsets[i], r.AdjustedGreenS[i])
	}
}
