// Package builder provides deterministic "functional-options" fixtures for
// route graphs: small canonical topologies for tests and scattered geographic
// instances for demos and property checks.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): new core.Graph, resolve options,
//     apply constructors in order.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  RNG, weight function, ID offset, label scheme.
//   - Topologies (Constructor factories):
//     – Complete(n), Cycle(n), Path(n), Star(n), RandomSparse(n, p).
//     – GeoScatter(n, box): random positions inside a lat/long box, complete
//     graph weighted by great-circle distance.
//     – RandomSparse(n, p): road networks with gaps, used to exercise dead
//     ends and missing Hamiltonian cycles.
//   - Edge weights (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn (road lengths in metres for coordinate-free fixtures).
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order give
//     identical graphs.
//   - Fast-fail on meaningless option values via panics in option constructors;
//     constructors themselves return sentinel errors and never panic.
//   - Vertex IDs are cfg.idOffset+i for i in [0, n), so several constructors can
//     share one graph when offsets differ.
package builder
