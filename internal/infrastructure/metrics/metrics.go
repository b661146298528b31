package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	listHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "listing_cache_list_hits_total",
		Help: "Number of cache hits for list queries.",
	})
	listMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "listing_cache_list_misses_total",
		Help: "Number of cache misses for list queries.",
	})
	detailHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "listing_cache_detail_hits_total",
		Help: "Number of cache hits for detail lookups.",
	})
	detailMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "listing_cache_detail_misses_total",
		Help: "Number of cache misses for detail lookups.",
	})
	hitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "listing_cache_hit_duration_seconds",
		Help:    "Time spent serving a request from the cache.",
		Buckets: prometheus.DefBuckets,
	})
	missDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "listing_cache_miss_duration_seconds",
		Help:    "Time spent checking the cache on a miss.",
		Buckets: prometheus.DefBuckets,
	})
)

func IncListHit() { listHits.Inc() }

func IncListMiss() { listMisses.Inc() }

func IncDetailHit() { detailHits.Inc() }

func IncDetailMiss() { detailMisses.Inc() }

func AddHitDuration(seconds float64) { hitDuration.Observe(seconds) }

func AddMissDuration(seconds float64) { missDuration.Observe(seconds) }
