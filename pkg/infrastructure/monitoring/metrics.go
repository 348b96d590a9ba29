package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/foodops/weekplan/pkg/application/dto"
)

// Collector gathers scheduling run metrics on a private prometheus registry
type Collector struct {
	registry *prometheus.Registry

	runs           *prometheus.CounterVec
	scheduledUnits prometheus.Counter
	unplacedUnits  prometheus.Counter
	entries        prometheus.Counter
	runDuration    prometheus.Histogram
}

// NewCollector creates a collector with its own registry
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weekplan_runs_total",
				Help: "Scheduling runs by outcome",
			},
			[]string{"outcome"},
		),
		scheduledUnits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "weekplan_scheduled_units_total",
			Help: "Units placed into schedule slots",
		}),
		unplacedUnits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "weekplan_unplaced_units_total",
			Help: "Units that could not be seated by Friday",
		}),
		entries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "weekplan_schedule_entries_total",
			Help: "Schedule entries written",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "weekplan_run_duration_seconds",
			Help:    "Duration of scheduling runs",
			Buckets: prometheus.DefBuckets,
		}),
	}

	c.registry.MustRegister(c.runs, c.scheduledUnits, c.unplacedUnits, c.entries, c.runDuration)
	return c
}

// Registry exposes the collector's registry for an HTTP metrics handler
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveRun records the outcome of one scheduling run
func (c *Collector) ObserveRun(result *dto.ScheduleResult, err error, elapsed time.Duration) {
	c.runDuration.Observe(elapsed.Seconds())
	if err != nil {
		c.runs.WithLabelValues("error").Inc()
		return
	}
	c.runs.WithLabelValues("ok").Inc()
	c.scheduledUnits.Add(float64(result.TotalUnits()))
	c.unplacedUnits.Add(float64(result.UnplacedUnits()))
	c.entries.Add(float64(len(result.Entries)))
}
