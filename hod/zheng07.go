package hod

import (
	"fmt"

	"github.com/quasarlab/halopop/params"
)

// Best-fit HOD parameters from Zheng, Coil & Zehavi (2007), Table 1: nine
// volume-limited SDSS samples by r-band absolute-magnitude threshold. The
// literal values are the published ones; lookups match thresholds exactly.
var (
	zheng07Thresholds = []float64{-18.0, -18.5, -19.0, -19.5, -20.0, -20.5, -21.0, -21.5, -22.0}
	zheng07LogMmin    = []float64{11.35, 11.46, 11.60, 11.75, 12.02, 12.30, 12.79, 13.38, 14.22}
	zheng07SigmaLogM  = []float64{0.25, 0.24, 0.26, 0.28, 0.26, 0.21, 0.39, 0.51, 0.77}
	zheng07LogM0      = []float64{11.20, 10.59, 11.49, 11.69, 11.38, 11.84, 11.92, 13.94, 14.00}
	zheng07LogM1      = []float64{12.40, 12.68, 12.83, 13.01, 13.31, 13.58, 13.94, 13.91, 14.69}
	zheng07Alpha      = []float64{0.83, 0.97, 1.02, 1.06, 1.06, 1.12, 1.15, 1.04, 0.87}
)

var (
	kravtsov04Publications  = []string{"arXiv:astro-ph/0308519", "arXiv:astro-ph/0703457"}
	leauthaud11Publications = []string{"arXiv:1103.2077", "arXiv:1104.0928"}
)

// Zheng07Thresholds returns the nine published thresholds, faintest first.
func Zheng07Thresholds() []float64 {
	return append([]float64(nil), zheng07Thresholds...)
}

// Zheng07CenParams returns the published central-occupation parameters at
// threshold, keyed for galType: logMmin_<galType>, sigma_logM_<galType>.
// The threshold must equal a published value exactly.
func Zheng07CenParams(threshold float64, galType string) (params.Dict, error) {
	i, err := zheng07Index(threshold)
	if err != nil {
		return nil, err
	}
	return params.Dict{
		"logMmin_" + galType:    zheng07LogMmin[i],
		"sigma_logM_" + galType: zheng07SigmaLogM[i],
	}, nil
}

// Zheng07SatParams returns the published satellite-occupation parameters
// at threshold, keyed for galType: logM0_<galType>, logM1_<galType>,
// alpha_<galType>. The threshold must equal a published value exactly.
func Zheng07SatParams(threshold float64, galType string) (params.Dict, error) {
	i, err := zheng07Index(threshold)
	if err != nil {
		return nil, err
	}
	return params.Dict{
		"logM0_" + galType: zheng07LogM0[i],
		"logM1_" + galType: zheng07LogM1[i],
		"alpha_" + galType: zheng07Alpha[i],
	}, nil
}

func zheng07Index(threshold float64) (int, error) {
	for i, t := range zheng07Thresholds {
		if t == threshold {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %g (published: %g to %g in steps of -0.5)",
		ErrUnsupportedThreshold, threshold,
		zheng07Thresholds[0], zheng07Thresholds[len(zheng07Thresholds)-1])
}
