package simulator

import "time"

const (
	baseDailyOrders = 140
	minDailyOrders  = 40

	weekdayFactor  = 1.5
	peakDayFactor  = 3.0
	semesterFactor = 1.8

	minHourWeight = 0.01
)

// hourWeight is the cafe's intra-day shape: morning ramp, lunch spike,
// steady afternoon and an evening taper.
func hourWeight(hour int) float64 {
	var w float64
	switch {
	case hour >= 7 && hour <= 9:
		w = 0.9
	case hour >= 10 && hour <= 13:
		w = 1.4
	case hour >= 14 && hour <= 17:
		w = 1.1
	case hour >= 18 && hour <= 20:
		w = 0.7
	default:
		w = 0.3
	}
	if w < minHourWeight {
		return minHourWeight
	}
	return w
}

// hourWeights is evaluated once; the table never changes.
var hourWeights, hourWeightTotal = func() ([HoursPerDay]float64, float64) {
	var weights [HoursPerDay]float64
	var total float64
	for h := range weights {
		weights[h] = hourWeight(h)
		total += weights[h]
	}
	return weights, total
}()

// semesterMultiplier boosts the back-to-school windows: August 15-31 and
// January 1-24, whatever the year.
func semesterMultiplier(day time.Time) float64 {
	month, dayNum := day.Month(), day.Day()
	if (month == time.August && dayNum >= 15) || (month == time.January && dayNum <= 24) {
		return semesterFactor
	}
	return 1.0
}

// dailyOrderBase is the order volume of a plain day before multipliers.
func dailyOrderBase(beta float64) int {
	n := int(baseDailyOrders * beta)
	if n < minDailyOrders {
		return minDailyOrders
	}
	return n
}
