// Package lvlopt is your in-memory toolbox for combinatorial optimization
// on cost matrices — starting with the linear assignment problem.
//
// 🚀 What is lvlopt?
//
//	A modern, dependency-free library that brings together:
//		• Assignment: primal-dual Hungarian (Kuhn–Munkres) solver — exact,
//		  integer-cost, with matrix reduction and price evaluation
//		• Matrix I/O: delimited-text cost matrix loading + aligned display
//
// ✨ Why choose lvlopt?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, in-code progress invariants
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – single-threaded, no randomness, reproducible results
//
// Under the hood, everything is organized under two subpackages:
//
//	assignment/ — reduction, zero-edge graph, augmenting-path search,
//	              dual adjustment, the solve loop & price evaluation
//	matrixio/   — cost matrix readers & writers for delimited text
//
// Quick ASCII example:
//
//	    workers        tasks
//	     x1 ──0── y2      cost[i][j] holds the price of giving
//	     x2 ──0── y1      task j to worker i; the solver picks
//	     x3 ──0── y3      the cheapest bijection X→Y.
//
// Next up: rectangular (padded) assignment, min-cost flow, k-best matchings.
// Dive into README.md for full examples and the roadmap.
//
//	go get github.com/katalvlaran/lvlopt/assignment
package lvlopt
