// Package arap computes physically-plausible deformations of triangulated
// surface meshes — drag a handful of handle vertices and the rest of the
// surface follows while staying locally as rigid as possible.
//
// 🚀 What is arap?
//
//	An As-Rigid-As-Possible (ARAP) deformation solver driven by the
//	Alternating Direction Method of Multipliers (ADMM):
//		• Cotangent edge weights from rest-pose triangle geometry
//		• One sparse SPD system, assembled and factorized exactly once
//		• Per-frame iterations: linear solve → SO(3) projection → dual update
//		• Energy breakdown ("ARAP", "Rotation", "Total") on demand
//		• Finite-difference validators for stationarity & energy descent
//
// ✨ Why choose arap?
//
//   - Interactive-friendly – the factorization is reused across every frame
//   - Typed errors – a bad frame returns a sentinel error, never kills a session
//   - Two proven-equivalent system derivations, selectable & cross-tested
//   - Built on gonum – dense/symmetric factorizations and SVD, no cgo
//
// Under the hood, everything is organized under three subpackages:
//
//	mesh/   — mesh data model, cotangent weight builder, canonical test meshes
//	sparse/ — triplet (COO) accumulation compacted into factorizable form
//	admm/   — system assembly, the ADMM iteration engine, energy & validation
//
// Quick ASCII example:
//
//	    3───2
//	    │ ╱ │
//	    0───1
//
//	a two-triangle quad: pin vertex 0, move it, and Deform updates 1..3.
//
//	go get github.com/dut09/arap
package arap
