// Package hod implements halo occupation distribution (HOD) components:
// models of how many galaxies of a given type live in a halo of given
// mass, and Monte Carlo realizations of those counts.
//
// 🚀 What is an occupation component?
//
//	A model with a fixed identity (galaxy type, sample threshold,
//	occupation bound, mass keys) and a parameter dictionary that fully
//	determines its statistics:
//	  • MeanOccupation: the first moment ⟨N⟩(M) per halo
//	  • MCOccupation:   integer counts drawn per halo
//
//	Four published models are implemented:
//	  • Kravtsov04Cens:  ⟨Ncen⟩ = ½(1 + erf((log10 M − logMmin)/σ_logM))
//	  • Kravtsov04Sats:  ⟨Nsat⟩ = ((M − M0)/M1)^α above M0, else 0
//	  • Leauthaud11Cens: erf threshold on the SMHM-predicted stellar mass
//	  • Leauthaud11Sats: ⟨Nsat⟩ = exp(−mcut/M)·(M/msat)^α
//
// ✨ Conventions:
//
//   - The occupation bound picks the Monte Carlo law: BoundUnity draws
//     Bernoulli (at most one central), BoundUnbounded draws Poisson
//     (satellites). Non-positive Poisson rates clamp to TinyPoissonRate.
//   - Parameter keys carry the galaxy type as a suffix: logMmin_centrals,
//     alpha_satellites. Key sets are fixed at construction and enforced on
//     every update and per-call override.
//   - Kravtsov04 defaults come from the Zheng07 published table at the
//     construction threshold; only the nine published thresholds resolve
//     (ErrUnsupportedThreshold otherwise).
//   - Satellite models may condition on a central model: the satellite
//     mean is multiplied elementwise by the central mean. A central fit to
//     a different threshold logs a warning and proceeds.
//   - WithSeed gives bit-reproducible draws; overrides never mutate.
//
// ⚙️ Usage:
//
//	cen, err := hod.NewKravtsov04Cens(hod.WithThreshold(-20.5))
//	sat, err := hod.NewKravtsov04Sats(
//	  hod.WithThreshold(-20.5),
//	  hod.WithCentralModel(cen),
//	)
//	mean, err := sat.MeanOccupation(halos.Masses(masses))
//	counts, err := sat.MCOccupation(halos.Masses(masses), hod.WithSeed(42))
//
// Complexity: every operation is O(n) over halos.
package hod
