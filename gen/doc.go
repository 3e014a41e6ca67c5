// Package gen builds classic graph topologies over int node IDs.
//
// What:
//   - Path(n)      0-1-…-(n-1).
//   - Cycle(n)     Path(n) closed with the edge (n-1, 0).
//   - Complete(n)  every unordered pair; ordered pairs when directed.
//   - Star(leaves) hub 0 joined to leaves 1…leaves.
//   - Gnp(n, p)    Erdős–Rényi: each pair independently with
//     probability p.
//
// Deterministic generators need no options. Stochastic ones take their
// randomness explicitly through WithSeed or WithRand; there is no hidden
// global RNG, so a fixed seed always reproduces the same graph. All
// generators accept WithDirected to build the directed variant and emit
// nodes and edges in a fixed order, so downstream insertion-order
// iteration is stable.
//
// Errors:
//
//   - ErrBadSize         negative node count.
//   - ErrBadProbability  p outside [0, 1].
//   - ErrNoRand          a stochastic generator was called without
//     WithSeed or WithRand.
//
// Option constructors panic on nil arguments (programmer error); the
// generators themselves only return errors.
package gen
