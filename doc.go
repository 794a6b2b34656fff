// Package halopop models how galaxies occupy dark-matter halos: mean
// occupation statistics, Monte Carlo realizations, and the stellar-to-halo
// mass relations behind them.
//
// 🚀 What is halopop?
//
//	A small, deterministic library for halo occupation distribution (HOD)
//	modeling that brings together:
//		• Occupation components: erf-threshold centrals, power-law satellites
//		• SMHM relations: Moster13 (double power law), Behroozi10 (invertible)
//		• Log-normal scatter profiles over halo mass
//		• Published parameter tables (Zheng07) reproduced bit-for-bit
//		• Bernoulli & Poisson Monte Carlo with reproducible seeding
//
// ✨ Why halopop?
//
//   - Strict parameter discipline – fixed key sets, validated on every update
//   - Deterministic – explicit seeds give identical realizations, always
//   - No I/O, no globals – plain slices in, plain slices out
//   - gonum under the hood – splines and samplers from a battle-tested stack
//
// Everything is organized under five subpackages:
//
//	params/  — parameter dictionaries and exact key-set validation
//	halos/   — halo/galaxy tables and mass-input channel resolution
//	scatter/ — log-normal scatter profiles over control points
//	smhm/    — stellar-to-halo-mass relations (Moster13, Behroozi10)
//	hod/     — occupation components, published tables, MC occupation
//
// Quick example:
//
//	cen, _ := hod.NewKravtsov04Cens()
//	mean, _ := cen.MeanOccupation(halos.Masses([]float64{1e12, 1e13}))
//	counts, _ := cen.MCOccupation(halos.Masses(masses), hod.WithSeed(42))
//
// Dive into examples/ for runnable demos and each subpackage's doc.go for
// the formulas and conventions.
//
//	go get github.com/quasarlab/halopop
package halopop
