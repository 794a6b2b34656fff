package hod_test

import (
	"fmt"
	"math"

	"github.com/quasarlab/halopop/halos"
	"github.com/quasarlab/halopop/hod"
	"github.com/quasarlab/halopop/params"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewKravtsov04Cens
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Evaluate ⟨Ncen⟩ for an Mr < −20 sample at the transition mass, where the
//	erf profile crosses one half, and deep in the saturated tail.
//
// Complexity: O(n) time, O(n) memory for n halos.
func ExampleNewKravtsov04Cens() {
	cen, err := hod.NewKravtsov04Cens()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	mean, err := cen.MeanOccupation(halos.Masses([]float64{
		math.Pow(10, 12.02), // logMmin for the −20 sample
		1e16,
	}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("Ncen(logM=12.02) = %.3f\n", mean[0])
	fmt.Printf("Ncen(logM=16.00) = %.3f\n", mean[1])
	// Output:
	// Ncen(logM=12.02) = 0.500
	// Ncen(logM=16.00) = 1.000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewKravtsov04Sats
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A custom power law with round parameters: cutoff 10^10, normalization
//	10^12, slope 1. At M = 3.01·10^12 the mean is (M − 10^10)/10^12 = 3.
func ExampleNewKravtsov04Sats() {
	sat, err := hod.NewKravtsov04Sats(hod.WithParams(params.Dict{
		"logM0_satellites": 10,
		"logM1_satellites": 12,
		"alpha_satellites": 1,
	}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	mean, err := sat.MeanOccupation(halos.Masses([]float64{3.01e12}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("Nsat = %.1f\n", mean[0])
	// Output:
	// Nsat = 3.0
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleZheng07CenParams
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Look up the published central parameters for the Mr < −20 SDSS sample.
func ExampleZheng07CenParams() {
	dict, err := hod.Zheng07CenParams(-20, "centrals")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("logMmin_centrals = %g\n", dict["logMmin_centrals"])
	fmt.Printf("sigma_logM_centrals = %g\n", dict["sigma_logM_centrals"])
	// Output:
	// logMmin_centrals = 12.02
	// sigma_logM_centrals = 0.26
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleMCOccupation
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Draw central counts far above and far below the transition, where the
//	mean saturates and the Bernoulli draws are forced.
func ExampleMCOccupation() {
	cen, err := hod.NewKravtsov04Cens()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	counts, err := cen.MCOccupation(halos.Masses([]float64{1e16, 1e9, 1e16}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(counts)
	// Output:
	// [1 0 1]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewLeauthaud11Sats
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Satellite occupation through the stellar-to-halo route at its default
//	log10(M*) > 10.5 sample, evaluated on a 10^13 M☉/h host.
func ExampleNewLeauthaud11Sats() {
	sat, err := hod.NewLeauthaud11Sats()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	mean, err := sat.MeanOccupation(halos.Masses([]float64{1e13}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("Nsat = %.3f\n", mean[0])
	// Output:
	// Nsat = 1.407
}
