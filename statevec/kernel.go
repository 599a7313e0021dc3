package statevec

import (
	"github.com/katalvlaran/gf2grover/circuit"
	"golang.org/x/sync/errgroup"
)

// kernel is one gate lowered onto an N-qubit index space.
type kernel struct {
	kind  circuit.Kind
	m     [2][2]complex128
	tmask uint64 // target bit
	cmask uint64 // all control bits
	low   uint64 // bits below the target
}

func lower(g circuit.Gate, n int) kernel {
	k := kernel{
		kind:  g.Kind(),
		m:     g.Matrix(),
		tmask: circuit.BitMask(g.Target(), n),
	}
	k.low = k.tmask - 1
	for _, q := range g.Controls() {
		k.cmask |= circuit.BitMask(q, n)
	}

	return k
}

// run transforms every active pair whose compact index lies in [lo, hi).
// Compact index p maps to i0 by inserting a zero at the target bit.
func (k *kernel) run(amps []complex128, lo, hi uint64) {
	for p := lo; p < hi; p++ {
		i0 := (p & k.low) | ((p &^ k.low) << 1)
		if i0&k.cmask != k.cmask {
			continue
		}
		i1 := i0 | k.tmask
		switch k.kind {
		case circuit.KindX:
			amps[i0], amps[i1] = amps[i1], amps[i0]
		case circuit.KindZ:
			amps[i1] = -amps[i1]
		default:
			a0, a1 := amps[i0], amps[i1]
			amps[i0] = k.m[0][0]*a0 + k.m[0][1]*a1
			amps[i1] = k.m[1][0]*a0 + k.m[1][1]*a1
		}
	}
}

// apply runs k over the whole vector, split into workers contiguous chunks
// of the pair space when workers > 1.
func (k *kernel) apply(amps []complex128, workers int) {
	pairs := uint64(len(amps)) >> 1
	if workers <= 1 || pairs < uint64(workers) {
		k.run(amps, 0, pairs)

		return
	}

	var g errgroup.Group
	chunk := (pairs + uint64(workers) - 1) / uint64(workers)
	for lo := uint64(0); lo < pairs; lo += chunk {
		lo, hi := lo, min(lo+chunk, pairs)
		g.Go(func() error {
			k.run(amps, lo, hi)

			return nil
		})
	}
	_ = g.Wait()
}
