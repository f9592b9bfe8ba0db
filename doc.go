// Package portfolio implements a position-accounting and returns engine for
// a single brokerage portfolio.
//
// The core model is an order-driven ledger: a chronological stream of filled
// orders is replayed through a weighted-average-cost state machine, producing
// per-ticker positions, holding lifetimes, realized gain events and the cash
// flow history. Daily snapshots of the ledger are then valued against market
// price series to derive the unrealized-return series, the cumulative
// realized series and a money-weighted rate of return.
//
// Monetary amounts that participate in accounting identities (quantities,
// prices, cost bases) are carried as decimals; derived statistics (returns,
// rates) are plain floats. Every daily series is a date.History keyed by
// calendar day, so gaps are explicit and forward-filling is a deliberate
// step, never an accident of indexing.
package portfolio
