package aggregator

import (
	"github.com/shopspring/decimal"

	"github.com/monieshop/salesight/internal/model"
)

// DayVolume is a day's total units sold.
type DayVolume struct {
	Date   model.Date `json:"date" yaml:"date"`
	Volume int64      `json:"volume" yaml:"volume"`
}

// DayValue is a day's total sales value.
type DayValue struct {
	Date  model.Date      `json:"date" yaml:"date"`
	Value decimal.Decimal `json:"value" yaml:"value"`
}

// ProductVolume is a product's total units sold.
type ProductVolume struct {
	Product string `json:"product_id" yaml:"product_id"`
	Volume  int64  `json:"volume" yaml:"volume"`
}

// MonthStaff is one month's top-selling staff member.
type MonthStaff struct {
	Month  model.Month `json:"month" yaml:"month"`
	Staff  string      `json:"staff_id" yaml:"staff_id"`
	Volume int64       `json:"volume" yaml:"volume"`
}

// HourAverage is an hour-of-day's mean transaction volume.
type HourAverage struct {
	Hour         int     `json:"hour" yaml:"hour"`
	Average      float64 `json:"average_volume" yaml:"average_volume"`
	Transactions int64   `json:"transactions" yaml:"transactions"`
}

// Results carries the five finalized metrics. The pointer fields are nil
// and TopStaffByMonth is empty when no transactions were aggregated.
type Results struct {
	TopVolumeDay    *DayVolume     `json:"top_volume_day,omitempty" yaml:"top_volume_day,omitempty"`
	TopValueDay     *DayValue      `json:"top_value_day,omitempty" yaml:"top_value_day,omitempty"`
	TopProduct      *ProductVolume `json:"top_product,omitempty" yaml:"top_product,omitempty"`
	TopStaffByMonth []MonthStaff   `json:"top_staff_by_month,omitempty" yaml:"top_staff_by_month,omitempty"`
	PeakHour        *HourAverage   `json:"peak_hour,omitempty" yaml:"peak_hour,omitempty"`
	Records         int            `json:"records" yaml:"records"`
}

// Empty reports whether the batch had no transactions at all.
func (r Results) Empty() bool {
	return r.Records == 0
}
