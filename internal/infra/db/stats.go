package db

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// StatsSource is the slice of *pgxpool.Pool the stats collector reads.
type StatsSource interface {
	Stat() *pgxpool.Stat
}

// PoolCollector exports pgx pool gauges at scrape time.
type PoolCollector struct {
	pool StatsSource

	total    *prometheus.Desc
	idle     *prometheus.Desc
	acquired *prometheus.Desc
	max      *prometheus.Desc
	waits    *prometheus.Desc
}

func NewPoolCollector(pool StatsSource) *PoolCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName("marketplace", "db_pool", name), help, nil, nil)
	}
	return &PoolCollector{
		pool:     pool,
		total:    desc("conns", "Open connections."),
		idle:     desc("idle_conns", "Idle connections."),
		acquired: desc("acquired_conns", "Connections checked out."),
		max:      desc("max_conns", "Configured pool ceiling."),
		waits:    desc("empty_acquire_total", "Acquires that had to wait for a connection."),
	}
}

func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.total
	ch <- c.idle
	ch <- c.acquired
	ch <- c.max
	ch <- c.waits
}

func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.pool.Stat()
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(s.TotalConns()))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(s.IdleConns()))
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.GaugeValue, float64(s.AcquiredConns()))
	ch <- prometheus.MustNewConstMetric(c.max, prometheus.GaugeValue, float64(s.MaxConns()))
	ch <- prometheus.MustNewConstMetric(c.waits, prometheus.CounterValue, float64(s.EmptyAcquireCount()))
}
