// Package aggregator computes the five sales metrics over an in-memory
// batch of transactions: top volume day, top value day, top product by
// volume, top staff per month, and the peak hour by average transaction
// volume.
//
// Lifecycle: Add() per transaction, then Results() to finalize. Results is
// a pure function of the added set; calling it repeatedly yields identical
// values, and the input transactions are never mutated.
package aggregator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/monieshop/salesight/internal/model"
)

// hourStats accumulates per-hour transaction volumes.
type hourStats struct {
	sum   int64
	count int64
}

// Aggregator holds the five running accumulators.
type Aggregator struct {
	dailyVolume   map[model.Date]int64
	dailyValue    map[model.Date]decimal.Decimal
	productVolume map[string]int64
	staffMonthly  map[model.Month]map[string]int64
	hourly        map[int]*hourStats
	records       int
}

// New creates an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{
		dailyVolume:   make(map[model.Date]int64),
		dailyValue:    make(map[model.Date]decimal.Decimal),
		productVolume: make(map[string]int64),
		staffMonthly:  make(map[model.Month]map[string]int64),
		hourly:        make(map[int]*hourStats),
	}
}

// Add ingests one transaction into all five accumulators.
func (a *Aggregator) Add(tx model.Transaction) {
	a.records++

	a.dailyVolume[tx.Date] += tx.Volume
	a.dailyValue[tx.Date] = a.dailyValue[tx.Date].Add(tx.Value)
	a.productVolume[tx.Product] += tx.Volume

	month := tx.Date.MonthOf()

	staff, ok := a.staffMonthly[month]
	if !ok {
		staff = make(map[string]int64)
		a.staffMonthly[month] = staff
	}

	staff[tx.Staff] += tx.Volume

	stats, ok := a.hourly[tx.Hour]
	if !ok {
		stats = &hourStats{}
		a.hourly[tx.Hour] = stats
	}

	stats.sum += tx.Volume
	stats.count++
}

// AddAll ingests a batch of transactions.
func (a *Aggregator) AddAll(txs []model.Transaction) {
	for _, tx := range txs {
		a.Add(tx)
	}
}

// Records returns the number of transactions added so far.
func (a *Aggregator) Records() int {
	return a.records
}

// Results finalizes the five metrics. On an empty input every metric is
// in its explicit empty form: nil pointers and an empty TopStaffByMonth.
func (a *Aggregator) Results() Results {
	return Results{
		TopVolumeDay:    a.topVolumeDay(),
		TopValueDay:     a.topValueDay(),
		TopProduct:      a.topProduct(),
		TopStaffByMonth: a.topStaffByMonth(),
		PeakHour:        a.peakHour(),
		Records:         a.records,
	}
}

// Ties break toward the smallest key: earliest date, lexicographically
// smallest ID, smallest hour. This keeps repeated runs deterministic
// regardless of map iteration order.

func (a *Aggregator) topVolumeDay() *DayVolume {
	var best *DayVolume

	for date, volume := range a.dailyVolume {
		better := best == nil ||
			volume > best.Volume ||
			(volume == best.Volume && date.Before(best.Date))
		if better {
			best = &DayVolume{Date: date, Volume: volume}
		}
	}

	return best
}

func (a *Aggregator) topValueDay() *DayValue {
	var best *DayValue

	for date, value := range a.dailyValue {
		better := best == nil ||
			value.GreaterThan(best.Value) ||
			(value.Equal(best.Value) && date.Before(best.Date))
		if better {
			best = &DayValue{Date: date, Value: value}
		}
	}

	return best
}

func (a *Aggregator) topProduct() *ProductVolume {
	var best *ProductVolume

	for product, volume := range a.productVolume {
		better := best == nil ||
			volume > best.Volume ||
			(volume == best.Volume && product < best.Product)
		if better {
			best = &ProductVolume{Product: product, Volume: volume}
		}
	}

	return best
}

func (a *Aggregator) topStaffByMonth() []MonthStaff {
	winners := make([]MonthStaff, 0, len(a.staffMonthly))

	for month, staff := range a.staffMonthly {
		var best MonthStaff

		first := true

		for id, volume := range staff {
			better := first ||
				volume > best.Volume ||
				(volume == best.Volume && id < best.Staff)
			if better {
				best = MonthStaff{Month: month, Staff: id, Volume: volume}
				first = false
			}
		}

		winners = append(winners, best)
	}

	sort.Slice(winners, func(i, j int) bool {
		return winners[i].Month.Before(winners[j].Month)
	})

	return winners
}

// DailyVolumes returns every day's summed volume, sorted by date.
// Used by the chart output; the report itself only needs the maximum.
func (a *Aggregator) DailyVolumes() []DayVolume {
	days := make([]DayVolume, 0, len(a.dailyVolume))
	for date, volume := range a.dailyVolume {
		days = append(days, DayVolume{Date: date, Volume: volume})
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days
}

// HourlyAverages returns the mean transaction volume for every hour that
// has transactions, sorted by hour.
func (a *Aggregator) HourlyAverages() []HourAverage {
	hours := make([]HourAverage, 0, len(a.hourly))
	for hour, stats := range a.hourly {
		hours = append(hours, HourAverage{
			Hour:         hour,
			Average:      float64(stats.sum) / float64(stats.count),
			Transactions: stats.count,
		})
	}

	sort.Slice(hours, func(i, j int) bool {
		return hours[i].Hour < hours[j].Hour
	})

	return hours
}

func (a *Aggregator) peakHour() *HourAverage {
	var best *HourAverage

	for hour, stats := range a.hourly {
		avg := float64(stats.sum) / float64(stats.count)

		better := best == nil ||
			avg > best.Average ||
			(avg == best.Average && hour < best.Hour)
		if better {
			best = &HourAverage{Hour: hour, Average: avg, Transactions: stats.count}
		}
	}

	return best
}
