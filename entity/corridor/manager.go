package corridor

import (
	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/greenwave-oss/utils"
	"github.com/tsinghua-fib-lab/greenwave-oss/utils/config"
)

// Corridor管理器
type CorridorManager struct {
	data      map[string]*Corridor
	corridors []*Corridor
}

// NewManager 创建Corridor管理器实例
// 功能：初始化Corridor管理器，创建内部数据结构
// 返回：新创建的Corridor管理器实例
func NewManager() *CorridorManager {
	return &CorridorManager{
		data:      make(map[string]*Corridor),
		corridors: make([]*Corridor, 0),
	}
}

// Init 初始化所有Corridor
// 功能：根据配置初始化所有干线对象，建立ID映射关系
// 参数：pbs-干线配置列表，control-全局控制配置
// 说明：使用并行处理提高初始化效率
func (m *CorridorManager) Init(pbs []config.CorridorConfig, control config.Control) {
	m.corridors = parallel.GoMap(pbs, func(pb config.CorridorConfig) *Corridor {
		return newCorridor(pb, control)
	})
	m.data = lo.SliceToMap(m.corridors, func(c *Corridor) (string, *Corridor) {
		return c.id, c
	})
}

// Get 根据ID获取Corridor实例
// 功能：通过干线ID查找对应的干线对象，如果不存在则panic
// 参数：id-干线标识
// 返回：对应的Corridor实例
func (m *CorridorManager) Get(id string) *Corridor {
	if c, ok := m.data[id]; ok {
		return c
	}
	log.Panicf("no corridor %s, please check data", id)
	return nil
}

// Find 批量查找Corridor
// 功能：返回ID列表对应的干线，ids为空时返回全部干线
// 参数：ids-干线标识列表
// 返回：查找到的干线列表与未找到的ID列表
func (m *CorridorManager) Find(ids []string) ([]*Corridor, []string) {
	return utils.Find(m.data, m.corridors, ids)
}

// Len 获取干线数量
func (m *CorridorManager) Len() int {
	return len(m.corridors)
}

// PlanAll 计算所有干线的协调方案
// 功能：并行生成每条干线的完整协调方案
// 返回：方案列表，顺序与干线配置顺序一致
// 说明：各干线的计算互不依赖，双向干线对可同时计算
func (m *CorridorManager) PlanAll() []*Plan {
	return parallel.GoMap(m.corridors, func(c *Corridor) *Plan {
		return c.Plan()
	})
}
