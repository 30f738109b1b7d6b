package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/timonso/ik/solver"
)

const namespace = "ik"

// Recorder counts solves, by solver name.
type Recorder struct {
	solves     *prometheus.CounterVec
	converged  *prometheus.CounterVec
	errors     *prometheus.CounterVec
	iterations *prometheus.HistogramVec
	distance   *prometheus.GaugeVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Number of solves attempted.",
		}, []string{"solver"}),

		converged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_converged_total",
			Help:      "Number of solves which ended within the threshold.",
		}, []string{"solver"}),

		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solve_errors_total",
			Help:      "Number of solves which were rejected before starting.",
		}, []string{"solver"}),

		iterations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_iterations",
			Help:      "Number of passes each solve took.",
			Buckets:   prometheus.LinearBuckets(0, 1, 11),
		}, []string{"solver"}),

		distance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "solve_distance",
			Help:      "Distance between the end effector and the target after the last solve.",
		}, []string{"solver"}),
	}

	for _, c := range []prometheus.Collector{r.solves, r.converged, r.errors, r.iterations, r.distance} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("%w (while registering metrics)", err)
		}
	}

	return r, nil
}

// Observe records the outcome of one solve.
func (r *Recorder) Observe(name string, res solver.Result, err error) {
	r.solves.WithLabelValues(name).Inc()

	if err != nil {
		r.errors.WithLabelValues(name).Inc()
		return
	}

	if res.Converged {
		r.converged.WithLabelValues(name).Inc()
	}

	r.iterations.WithLabelValues(name).Observe(float64(res.Iterations))
	r.distance.WithLabelValues(name).Set(res.Distance)
}

// Dump writes everything in g to w, in the text exposition format.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}

	return nil
}
