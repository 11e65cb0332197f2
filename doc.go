// Package knapsack solves the 0/1 knapsack problem with two stochastic
// local searches and compares them on equal terms.
//
// 🚀 What is knapsack?
//
//	A small, seed-reproducible library and command-line tool that brings together:
//		• A shared problem model: items, capacity, iteration budget, gated fitness
//		• Hill Climbing: single-bit-flip first improvement with random repair
//		• Grey Wolf Optimizer: continuous pack, logistic transfer, Bernoulli discretization
//		• Per-iteration traces of current and best value for every run
//		• Parallel comparison and seeded trial statistics
//		• Reports: text panels, convergence charts, Prometheus metrics
//
// ✨ Why choose knapsack?
//
//   - Deterministic – every random choice flows from an injectable *rand.Rand
//   - Safe to compare – engines never share state; the instance is read-only
//   - Honest results – the reported best is always feasible
//
// Under the hood, everything is organized in subpackages:
//
//	core/          Item, Instance, Solution, fitness, repair, Result, Engine
//	trace/         per-iteration Record and Trace
//	hillclimb/     Hill Climbing engine
//	gwo/           Grey Wolf Optimizer engine and transfer functions
//	builder/       seeded synthetic instances (uncorrelated, weakly/strongly correlated)
//	dataset/       CSV and YAML item lists
//	runner/        concurrent Compare, seeded Trials, Summarize
//	report/        result panels, trial summaries, convergence charts
//	metrics/       Prometheus collectors, textfile export, /metrics handler
//	logging/       zap logger construction
//	config/        flag, environment and file configuration of the CLI
//	cmd/knapsack/  the command-line tool
//
// Quick example:
//
//	A(60,10)  B(100,20)  C(120,30)   capacity 50
//
//	selection 011 → value 220, weight 50  (optimal)
//	selection 111 → weight 60 > 50        (fitness 0)
//
//	go install github.com/katalvlaran/knapsack/cmd/knapsack@latest
package knapsack
