// Package metrics defines and registers all custom Prometheus metrics for
// the courses API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// init via promauto; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "courses"

// UsersRegisteredTotal counts account registrations.
// Label:
//   - rol: "admin" or "alumno"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts registered, by role.",
	},
	[]string{"rol"},
)

// CoursesCreatedTotal counts newly created courses.
// Label:
//   - nivel: "principiante", "intermedio", or "avanzado"
var CoursesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "courses_created_total",
		Help:      "Total number of courses created, by level.",
	},
	[]string{"nivel"},
)

// EnrollmentsCreatedTotal counts successful enrollments (including
// reactivations of cancelled ones).
// Label:
//   - nivel: level of the course enrolled into
var EnrollmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollments_created_total",
		Help:      "Total number of enrollments created, by course level.",
	},
	[]string{"nivel"},
)

// EnrollmentTransitionsTotal counts enrollment status transitions.
// Label:
//   - estado: the status the enrollment moved to ("completado", "cancelado")
var EnrollmentTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollment_transitions_total",
		Help:      "Total number of enrollment status transitions, by target status.",
	},
	[]string{"estado"},
)

// CatalogCacheTotal counts public-catalog cache decisions.
// Label:
//   - result: "hit" (served from Redis) or "miss" (loaded from the store)
var CatalogCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_total",
		Help:      "Total number of public catalog lookups, labelled by cache result.",
	},
	[]string{"result"},
)

// AuditEventsTotal counts audit trail writes performed by the dispatcher.
// Label:
//   - result: "ok" or "error"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of enrollment audit events written, by result.",
	},
	[]string{"result"},
)
