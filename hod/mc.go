package hod

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/quasarlab/halopop/halos"
)

// MCOccupation draws one integer occupation count per halo for any
// occupation model. BoundUnity models draw Bernoulli with the mean as the
// probability; BoundUnbounded models draw Poisson with the mean as the
// rate, clamped up to TinyPoissonRate when non-positive. Equal seeds with
// equal inputs reproduce counts exactly. The concrete models' MCOccupation
// methods delegate here.
func MCOccupation(m OccupationModel, in halos.MassInput, opts ...EvalOption) ([]int, error) {
	means, err := m.MeanOccupation(in, opts...)
	if err != nil {
		return nil, err
	}
	cfg := gatherEvalConfig(opts...)
	return drawOccupation(m.OccupationBound(), means, &cfg)
}

func drawOccupation(bound Bound, means []float64, cfg *evalConfig) ([]int, error) {
	src := newSource(cfg.seed, cfg.seeded)
	out := make([]int, len(means))
	switch bound {
	case BoundUnity:
		for i, p := range means {
			bern := distuv.Bernoulli{P: p, Src: src}
			if bern.Rand() == 1 {
				out[i] = 1
			}
		}
	case BoundUnbounded:
		for i, lam := range means {
			if !(lam > 0) {
				lam = TinyPoissonRate
			}
			out[i] = int(distuv.Poisson{Lambda: lam, Src: src}.Rand())
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidBound, bound)
	}
	return out, nil
}
