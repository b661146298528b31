package entity

import "time"

// TTLClass is the cache lifetime bucket assigned to a cached response.
// Filtered results churn with upstream data more than broad listings, so
// they get the shorter lifetime.
type TTLClass int

const (
	// TTLGeneral covers unfiltered, broad queries.
	TTLGeneral TTLClass = iota
	// TTLFiltered covers queries with at least one constraint set.
	TTLFiltered
)

// TTL returns the cache lifetime for the class.
func (c TTLClass) TTL() time.Duration {
	if c == TTLFiltered {
		return 5 * time.Minute
	}
	return 10 * time.Minute
}

// MaxAge returns the Cache-Control max-age in seconds for the class.
func (c TTLClass) MaxAge() int {
	return int(c.TTL().Seconds())
}

// StaleWhileRevalidate returns the stale-while-revalidate window in
// seconds, proportional to the class TTL.
func (c TTLClass) StaleWhileRevalidate() int {
	return c.MaxAge() / 5
}
