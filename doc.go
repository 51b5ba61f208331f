// Package patrimoine computes the valuation, performance and growth
// projections of a personal investment portfolio from an append-only history
// of movements and periodic valuations.
//
// The calculation engine is a set of pure functions over immutable value
// records: ComputeHoldingPerformance and ComputePortfolioSummary replay a
// holding's movement history (Aggregate) and resolve its latest applicable
// valuation (ResolveValuation); Project and ProjectSchedule compute
// compound-growth trajectories. The engine never touches storage, rendering
// or the network: the Ledger type and the JSONL journal codec are the storage
// collaborator, and everything else lives in the sub-packages (cmd, renderer,
// coingecko, docs).
//
// All arithmetic is exact decimal; monetary values are rounded to the
// currency precision only at the presentation boundary.
package patrimoine
