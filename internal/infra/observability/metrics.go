package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "petshop"

// Metrics exposes HTTP and domain counters.
type Metrics struct {
	httpRequests       *prometheus.CounterVec
	httpLatency        *prometheus.HistogramVec
	appointmentsBooked prometheus.Counter
	bookingConflicts   *prometheus.CounterVec
	salesPaid          prometheus.Counter
	movements          *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		appointmentsBooked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "booked_total",
			Help:      "Appointments created",
		}),
		bookingConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "conflicts_total",
			Help:      "Bookings rejected because the resource was already taken",
		}, []string{"resource"}),
		salesPaid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sales",
			Name:      "paid_total",
			Help:      "Sales moved to paid",
		}),
		movements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "movements_total",
			Help:      "Inventory movements recorded by kind",
		}, []string{"kind"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.httpRequests, m.httpLatency, m.appointmentsBooked, m.bookingConflicts, m.salesPaid, m.movements)
	return m
}

func (m *Metrics) AppointmentBooked() {
	if m == nil {
		return
	}
	m.appointmentsBooked.Inc()
}

func (m *Metrics) BookingConflict(resource string) {
	if m == nil {
		return
	}
	m.bookingConflicts.WithLabelValues(resource).Inc()
}

func (m *Metrics) SalePaid() {
	if m == nil {
		return
	}
	m.salesPaid.Inc()
}

func (m *Metrics) MovementRecorded(kind string) {
	if m == nil {
		return
	}
	m.movements.WithLabelValues(kind).Inc()
}

// Middleware labels requests by route template so ids do not explode cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpLatency.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
