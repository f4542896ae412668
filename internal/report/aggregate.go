package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/receipts-report/internal/types"
)

// statPrecision is the number of decimal places kept in averages and shares.
const statPrecision = 2

// Aggregate groups records by date and computes one DailyStatistic per
// distinct date, ascending by date. The input slice is not modified.
func Aggregate(records []types.Record) []types.DailyStatistic {
	sorted := make([]types.Record, len(records))
	copy(sorted, records)
	sortByDate(sorted)

	stats := []types.DailyStatistic{}
	for start := 0; start < len(sorted); {
		end := start + 1
		for end < len(sorted) && sorted[end].Date.Equal(sorted[start].Date) {
			end++
		}
		stats = append(stats, dailyStatistic(sorted[start:end]))
		start = end
	}

	return stats
}

// sortByDate sorts records ascending by date, keeping file order within a date.
func sortByDate(records []types.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
}

// dailyStatistic computes the statistics of a group sharing the same date.
func dailyStatistic(group []types.Record) types.DailyStatistic {
	var all, lc, nlc segment
	for _, r := range group {
		all.add(r.ReceiptValue)
		if r.IsLoyalty() {
			lc.add(r.ReceiptValue)
		} else {
			nlc.add(r.ReceiptValue)
		}
	}

	share := decimal.Zero
	if !all.sum.IsZero() {
		share = lc.sum.Div(all.sum).RoundBank(statPrecision)
	}

	return types.DailyStatistic{
		Date:               group[0].Date.Format(types.DateLayout),
		NoOfReceipts:       all.count,
		NoOfReceiptsNLC:    nlc.count,
		NoOfReceiptsLC:     lc.count,
		Turnover:           all.sum,
		TurnoverNLC:        nlc.sum,
		TurnoverLC:         lc.sum,
		TurnoverShareLC:    share,
		AvgReceiptValue:    all.mean(),
		AvgReceiptValueNLC: nlc.mean(),
		AvgReceiptValueLC:  lc.mean(),
	}
}

// segment accumulates the count and turnover of a subset of receipts.
type segment struct {
	count int
	sum   decimal.Decimal
}

func (s *segment) add(value decimal.Decimal) {
	s.count++
	s.sum = s.sum.Add(value)
}

// mean is the rounded average receipt value; 0 for an empty segment.
func (s *segment) mean() decimal.Decimal {
	if s.count == 0 {
		return decimal.Zero
	}
	return s.sum.Div(decimal.NewFromInt(int64(s.count))).RoundBank(statPrecision)
}
