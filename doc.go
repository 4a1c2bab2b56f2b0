// Package transportation is a small toolkit for the two classic distribution
// problems of operations research, with every algorithmic decision recorded
// for step-by-step replay.
//
// 🚀 What is inside?
//
//	transport/  — transportation problem: balancing, Northwest Corner,
//	              Minimum Cost, Vogel's Approximation, feasibility check
//	assignment/ — assignment problem: Hungarian method (exact), greedy
//	              Minimum Cost bridge, Kuhn maximum matching
//	trace/      — the Step model shared by all solvers: recorder, replay,
//	              English narration
//	matrix/     — dense row-major matrix used as the Hungarian working copy
//	              and for shape/finiteness validation
//
// ✨ Why?
//
//   - Deterministic – same problem, same solution, same trace
//   - Replayable – render the state after step k without re-solving
//   - Safe – sentinel errors instead of panics on user input
//
// Quick start:
//
//	p := transport.Problem{
//		Supplies: []float64{20, 30, 10},
//		Demands:  []float64{10, 25, 25},
//		Costs:    [][]float64{{2, 3, 1}, {5, 4, 8}, {7, 6, 9}},
//	}
//	sol, err := transport.Vogel(p)
//	for _, st := range sol.Steps {
//		fmt.Println(st.Describe())
//	}
//
// The tpsolve command (cmd/tpsolve) solves a YAML problem file and prints the
// solution with its trace as JSON.
package transportation
