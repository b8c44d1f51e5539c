// 结果输出，将干线协调方案写入MongoDB供外部展示与持久化
package output

import (
	"context"
	"time"

	"git.fiblab.net/general/common/v2/mongoutil"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/greenwave-oss/entity/corridor"
	"github.com/tsinghua-fib-lab/greenwave-oss/utils/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// log 输出模块的日志记录器
var log = logrus.WithField("module", "output")

// writeTimeout 单次写入超时时间
const writeTimeout = 10 * time.Second

// Writer MongoDB结果写入器
// 功能：将协调方案与调整后的绿灯序列写入配置指定的集合
// 说明：集合名带任务名前缀，便于同一数据库下区分多次计算任务
type Writer struct {
	job    string            // 任务名，作为集合名前缀
	path   config.OutputPath // 输出位置配置
	client *mongo.Client     // MongoDB客户端
}

// NewWriter 创建结果写入器
// 功能：根据输出配置建立MongoDB连接
// 参数：job-任务名，path-输出位置配置
// 返回：初始化完成的写入器实例
func NewWriter(job string, path config.OutputPath) *Writer {
	return &Writer{
		job:    job,
		path:   path,
		client: mongoutil.NewClient(path.URI),
	}
}

// WritePlan 写入一条干线的方案与调整后的绿灯序列
// 功能：每个路段写入一条文档，附带干线级周期、带宽与累计偏移
// 参数：p-协调方案，adjustedGreenS-调整后的绿灯序列（与路段等长同序）
// 返回：写入错误，路段序列为空时直接返回nil
func (w *Writer) WritePlan(p *corridor.Plan, adjustedGreenS []int) error {
	offsets := p.CumulativeOffsets()
	docs := make([]any, 0, len(p.Segments))
	for i, s := range p.Rows() {
		docs = append(docs, bson.M{
			"job":                w.job,
			"corridor":           s.CorridorID,
			"from":               s.FromID,
			"to":                 s.ToID,
			"dist_m":             s.DistanceM,
			"vd_kmh":             s.DesignSpeedKmh,
			"offset_s":           s.OffsetS,
			"travel_time_s":      s.TravelTimeS,
			"cum_offset_s":       offsets[i],
			"green_s":            adjustedGreenS[i],
			"base_cycle_s":       p.BaseCycleS,
			"target_bandwidth_s": p.TargetBandwidthS,
		})
	}
	if len(docs) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	coll := w.client.Database(w.path.DB).Collection(w.job + "." + w.path.Col)
	_, err := coll.InsertMany(ctx, docs)
	return err
}

// Close 断开MongoDB连接
func (w *Writer) Close() {
	if err := w.client.Disconnect(context.Background()); err != nil {
		log.Errorf("failed to disconnect: %v", err)
	}
}
