package simulator

import (
	"math/rand"
	"time"
)

const HoursPerDay = 24

// DayDemand is the order schedule for one calendar day.
type DayDemand struct {
	Date       time.Time
	Peak       bool
	Multiplier float64
	Target     int
	Hourly     [HoursPerDay]int
}

// Distribute splits Target across the hourly buckets, replacing any
// previous split.
func (d *DayDemand) Distribute(rng *rand.Rand) {
	d.Hourly = distributeHours(rng, d.Target)
}

// Total sums the hourly buckets. It equals Target once Distribute has run.
func (d DayDemand) Total() int {
	var sum int
	for _, n := range d.Hourly {
		sum += n
	}
	return sum
}

type DemandPlan struct {
	Days     []DayDemand
	PeakDays []time.Time
}

// TotalOrders is the number of orders the plan schedules across all days.
func (p *DemandPlan) TotalOrders() int {
	var sum int
	for _, d := range p.Days {
		sum += d.Target
	}
	return sum
}

// DemandModel turns the run parameters into per-(day, hour) order counts.
type DemandModel struct {
	Beta  float64
	Peaks int
}

// Plan sets the daily target of every day in [start, end]. It consumes rng
// only for the peak-day sample; hourly buckets are filled later, one day at a
// time, by Distribute.
func (m DemandModel) Plan(rng *rand.Rand, start, end time.Time) *DemandPlan {
	days := DateRange(start, end)
	peaks := selectPeakDays(rng, days, m.Peaks)

	dailyOrders := dailyOrderBase(m.Beta)
	plan := &DemandPlan{Days: make([]DayDemand, 0, len(days))}
	for i, day := range days {
		multiplier := weekdayFactor
		if peaks[i] {
			multiplier *= peakDayFactor
			plan.PeakDays = append(plan.PeakDays, day)
		}
		multiplier *= semesterMultiplier(day)

		plan.Days = append(plan.Days, DayDemand{
			Date:       day,
			Peak:       peaks[i],
			Multiplier: multiplier,
			Target:     int(float64(dailyOrders) * multiplier),
		})
	}
	return plan
}

// DateRange lists every calendar day from start to end inclusive, at midnight.
func DateRange(start, end time.Time) []time.Time {
	start = truncateDay(start)
	end = truncateDay(end)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// selectPeakDays draws min(k, len(days)) distinct indexes without replacement.
func selectPeakDays(rng *rand.Rand, days []time.Time, k int) []bool {
	selected := make([]bool, len(days))
	if k <= 0 {
		return selected
	}
	if k >= len(days) {
		for i := range selected {
			selected[i] = true
		}
		return selected
	}
	for _, idx := range rng.Perm(len(days))[:k] {
		selected[idx] = true
	}
	return selected
}

// distributeHours splits target across the day by hour weight, then hands the
// truncation remainder out one order at a time to uniformly chosen hours.
func distributeHours(rng *rand.Rand, target int) [HoursPerDay]int {
	var hourly [HoursPerDay]int
	assigned := 0
	for h, w := range hourWeights {
		hourly[h] = int(float64(target) * w / hourWeightTotal)
		assigned += hourly[h]
	}
	for ; assigned < target; assigned++ {
		hourly[rng.Intn(HoursPerDay)]++
	}
	return hourly
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
