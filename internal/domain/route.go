package domain

// RouteSource identifies which estimation path produced a RouteEstimate.
type RouteSource string

const (
	RouteSourceLiveAPI     RouteSource = "LIVE_API"
	RouteSourceHaversine   RouteSource = "HAVERSINE"
	RouteSourceStaticTable RouteSource = "STATIC_TABLE"
)

// RouteEstimate is a best-effort distance/duration for an origin/destination
// pair. Degraded precision is signalled only via Source; fallback-path
// durations are rounded up to whole hours.
type RouteEstimate struct {
	DistanceKm      float64
	DurationMinutes int
	Source          RouteSource
}
