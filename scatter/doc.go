// Package scatter models log-normal scatter in a galaxy property as a
// function of halo mass.
//
// 🚀 What is a scatter profile?
//
//	Empirical galaxy–halo relations are not deterministic: at fixed halo
//	mass the galaxy property (say stellar mass) spreads log-normally. The
//	LogNormal model interpolates the scatter level σ (in dex) across
//	control points in log10(mass):
//	  • MeanScatter:   σ at each halo's log10(mass)
//	  • Realization:   one centered Gaussian draw per halo, sd = σ
//
// ✨ Conventions:
//
//   - Control points: strictly increasing abscissa in log10(mass), one
//     ordinate (σ, dex) each. Default: a single point {12.0 → 0.2}.
//   - Dictionary keys "scatter_model_param1..N" address the ordinates in
//     abscissa order; UpdateParams swaps values and refits the profile in
//     the same call, so the spline can never go stale.
//   - The declared profile degree is min(5, N−1); the fitted interpolant is
//     constant (N=1), piecewise linear (N=2) or monotone cubic (N≥3), and
//     clamps to the endpoint level outside the control-point span.
//   - σ ≤ 0 yields an exactly-zero realization.
//
// ⚙️ Usage:
//
//	s, err := scatter.NewLogNormal(
//	  scatter.WithControlPoints([]float64{11, 13}, []float64{0.3, 0.1}),
//	)
//	levels, err := s.MeanScatter(halos.Masses(masses))
//	draws, err := s.Realization(halos.Masses(masses), scatter.WithSeed(7))
//
// Complexity: MeanScatter and Realization are O(n) over halos; refitting is
// O(N) over control points.
package scatter
