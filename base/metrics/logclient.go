package metrics

import (
	"time"

	"github.com/nuna-market/goapi/base/log"
)

// LogClient is a metrics Service that only writes debug logs. It is used in
// environments without a statsd agent.
type LogClient struct{}

func (lc *LogClient) BumpAvg(key string, val float64, tags ...string) {
	log.Log().WithFields(log.Fields{"key": key, "val": val, "tags": tags}).Debug("metric avg")
}

func (lc *LogClient) BumpSum(key string, val float64, tags ...string) {
	log.Log().WithFields(log.Fields{"key": key, "val": val, "tags": tags}).Debug("metric sum")
}

func (lc *LogClient) BumpHistogram(key string, val float64, tags ...string) {
	log.Log().WithFields(log.Fields{"key": key, "val": val, "tags": tags}).Debug("metric histogram")
}

func (lc *LogClient) BumpTime(key string, tags ...string) Ender {
	return &logTimeTracker{start: time.Now(), key: key, tags: tags}
}

type logTimeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (lt *logTimeTracker) End() {
	log.Log().WithFields(log.Fields{
		"key":  lt.key,
		"ms":   time.Since(lt.start).Seconds() * 1000,
		"tags": lt.tags,
	}).Debug("metric time")
}
