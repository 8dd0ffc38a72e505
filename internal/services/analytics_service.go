// internal/services/analytics_service.go
// Layanan analitik: deteksi idle time yang menyimpang (z-score)

package services

import (
	"math"

	"shopfloor-tracker/internal/timecalc"
)

// DefaultIdleZ adalah ambang z-score default untuk outlier idle.
const DefaultIdleZ = 2.0

// minOutlierSample: di bawah ini z-score tidak bermakna.
const minOutlierSample = 3

type IdleOutlier struct {
	ID       string  `json:"id,omitempty"`
	Machine  string  `json:"machine"`
	Operator string  `json:"operator,omitempty"`
	IdleTime string  `json:"idleTime"`
	ZScore   float64 `json:"zScore"`
}

// IdleOutliers mendeteksi record dengan idle time menyimpang (mean & stddev populasi).
func IdleOutliers(records []timecalc.Record, minZ float64) []IdleOutlier {
	if len(records) < minOutlierSample {
		return nil
	}
	vals := make([]float64, len(records))
	var sum float64
	for i, r := range records {
		vals[i] = timecalc.DurationToDecimalHours(r.IdleTime)
		sum += vals[i]
	}
	mean := sum / float64(len(vals))

	var ss float64
	for _, v := range vals {
		d := v - mean
		ss += d * d
	}
	std := math.Sqrt(ss / float64(len(vals)))
	if std == 0 {
		return nil
	}

	var out []IdleOutlier
	for i, r := range records {
		z := (vals[i] - mean) / std
		if math.Abs(z) >= minZ {
			out = append(out, IdleOutlier{
				ID:       r.ID,
				Machine:  r.Machine,
				Operator: r.OperatorName,
				IdleTime: timecalc.Normalize(r.IdleTime),
				ZScore:   round2(z),
			})
		}
	}
	return out
}
