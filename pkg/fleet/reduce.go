package fleet

import (
	"errors"
	"math"
	"time"

	"github.com/samber/lo"

	"github.com/fleetwise/loadscaler/pkg/snapshot"
)

// ErrNoReports is returned when a collection produced nothing to reduce.
var ErrNoReports = errors.New("reduce: no reports")

// Reduce combines member reports into one snapshot: mean load across members
// plus population standard deviation.
func Reduce(reports []Report) (snapshot.Snapshot, error) {
	if len(reports) == 0 {
		return snapshot.Snapshot{}, ErrNoReports
	}

	loads := lo.Map(reports, func(r Report, _ int) float64 { return r.Load() })
	n := float64(len(loads))

	mean := lo.Sum(loads) / n

	var sq float64
	for _, l := range loads {
		d := l - mean
		sq += d * d
	}

	return snapshot.Snapshot{
		LoadAvg:     mean,
		LoadStd:     math.Sqrt(sq / n),
		Endpoints:   len(reports),
		CollectedAt: time.Now(),
	}, nil
}
