package portfolio

import (
	"math"

	"github.com/MaiqTheHonest/Trading212-PnL/date"
	"gonum.org/v1/gonum/stat"
)

const (
	riskFreeRate      = 0.03
	marketDaysPerYear = 252
)

// DailyReturns converts a cumulative percent series into day-over-day
// percent returns against the growing base.
func DailyReturns(cumulative []float64) []float64 {
	out := make([]float64, len(cumulative))
	prev := 100.0
	for i, value := range cumulative {
		daily := (value + 100 - prev) / prev * 100
		out[i] = daily
		prev += daily
	}
	return out
}

// SeriesStats summarizes a daily percent-return series.
type SeriesStats struct {
	Mean   float64 // geometric daily mean, percent
	StdDev float64 // sample standard deviation, percent
	Sharpe float64 // daily Sharpe ratio against the risk-free rate
}

// NewSeriesStats computes mean, standard deviation and Sharpe ratio of a
// daily percent-return series. The mean is geometric (compounding), the
// Sharpe ratio discounts a 3% annual risk-free rate spread over 252 market
// days.
func NewSeriesStats(daily []float64) SeriesStats {
	if len(daily) < 2 {
		return SeriesStats{}
	}
	growth := make([]float64, len(daily))
	for i, r := range daily {
		growth[i] = r/100 + 1
	}
	mean := (stat.GeometricMean(growth, nil) - 1) * 100

	// Sample variance about the geometric mean, not the arithmetic one.
	n := float64(len(daily))
	variance := stat.MomentAbout(2, daily, mean, nil) * n / (n - 1)
	sd := math.Sqrt(variance)

	dailyRiskFree := (math.Pow(1+riskFreeRate, 1.0/marketDaysPerYear) - 1) * 100
	return SeriesStats{
		Mean:   mean,
		StdDev: sd,
		Sharpe: (mean - dailyRiskFree) / sd,
	}
}

// AnnualizedReturn converts a cumulative percent return held over yearsHeld
// years into a compound annual percent rate.
func AnnualizedReturn(cumulativePercent, yearsHeld float64) float64 {
	if yearsHeld <= 0 {
		return 0
	}
	return (math.Pow(cumulativePercent/100+1, 1/yearsHeld) - 1) * 100
}

// DividendYieldOnCost is the annualized dividend yield in percent of the
// portfolio's average cost-basis exposure over its lifetime.
func DividendYieldOnCost(totalDividends float64, costBasis *date.History[float64], daysHeld, yearsHeld float64) float64 {
	if daysHeld <= 0 || yearsHeld <= 0 {
		return 0
	}
	var sum float64
	for _, cb := range costBasis.Values() {
		sum += cb
	}
	avg := sum / daysHeld
	if avg == 0 {
		return 0
	}
	return totalDividends / avg / yearsHeld * 100
}
