// Package trace defines the step-trace model shared by every solver in this
// module.
//
// 🚀 What is a trace?
//
//	Each solver appends one Step per algorithmic decision: an allocation on a
//	transport cell, a matrix reduction, a matching attempt, a cover-and-adjust
//	round. A presentation layer indexes steps[k] to render the state after
//	decision k without rerunning the algorithm.
//
// ✨ Contract:
//   - Step.Index is 1-based and equals insertion order.
//   - RemainingSupplies/RemainingDemands are post-step snapshots, owned by the
//     step (the Recorder deep-copies them).
//   - Info carries structured diagnostics only; narrative text is derived on
//     demand by Step.Describe and added as "description" when a Step is
//     encoded to JSON.
//   - Consumers should render Info by payload shape (the Key* constants), not
//     by which solver produced it.
//
// ⚙️ Usage:
//
//	rec := trace.NewRecorder("vogel", 8)
//	rec.Record(trace.KindAllocate, &trace.Cell{Row: 0, Col: 2, Quantity: 5, Cost: 1},
//	    supplies, demands, trace.Info{trace.KeyMode: "penalty"})
//	steps := rec.Steps()
//	grid := trace.Replay(steps, m, n, len(steps))
package trace
