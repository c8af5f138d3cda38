package types

// TrafficStats 用于报告一次连接的流量统计信息
type TrafficStats struct {
	Uplink   uint64
	Downlink uint64
}
