package rmq

// depthSequence is a sequence whose consecutive elements differ by exactly one.
type depthSequence interface {
	Len() uint64
	Depth(i uint64) uint64
	// Up reports whether Depth(p+1) == Depth(p)+1.
	Up(p uint64) bool
}

// plusMinus answers argmin queries over a depthSequence in O(1) after O(m)
// preprocessing.
//
// The sequence is cut into blocks of size bsz. A block's shape is fully described
// by its bsz-1 up/down steps (its type), so in-block answers are precomputed once
// per type and shared by all blocks of that type. Whole blocks are combined through
// a sparse table over each block's minimum position.
type plusMinus struct {
	seq    depthSequence
	bsz    uint64
	types  []uint32
	intra  []uint8 // intra[(typ*bsz+l)*bsz+r] = offset of min depth in [l, r] for that type
	blocks *SparseTable[uint64]
}

func newPlusMinus(seq depthSequence) *plusMinus {
	pm := &plusMinus{seq: seq, bsz: 1}
	num := seq.Len()
	if num == 0 {
		return pm
	}
	if log := log2Floor(num); log > 2 {
		pm.bsz = log / 2
	}
	pm.buildTypes()
	pm.buildIntra()

	blockNum := (num + pm.bsz - 1) / pm.bsz
	mins := make([]uint64, blockNum)
	for blk := uint64(0); blk < blockNum; blk++ {
		last := pm.bsz - 1
		if end := blk*pm.bsz + last; end >= num {
			last = num - 1 - blk*pm.bsz
		}
		mins[blk] = pm.inBlock(blk, 0, last)
	}
	pm.blocks = newSparseTableFunc(mins, func(a, b uint64) bool {
		return seq.Depth(a) < seq.Depth(b)
	})
	return pm
}

// buildTypes sets bit j-1 of a block's type when the step into in-block offset j
// goes up. Offsets past the end of the sequence count as up steps.
func (pm *plusMinus) buildTypes() {
	num := pm.seq.Len()
	pm.types = make([]uint32, (num+pm.bsz-1)/pm.bsz)
	for blk := range pm.types {
		start := uint64(blk) * pm.bsz
		typ := uint32(0)
		for j := uint64(1); j < pm.bsz; j++ {
			if pos := start + j; pos >= num || pm.seq.Up(pos-1) {
				typ |= 1 << (j - 1)
			}
		}
		pm.types[blk] = typ
	}
}

// buildIntra fills the in-block answer table for all 2^(bsz-1) block types.
func (pm *plusMinus) buildIntra() {
	bsz := pm.bsz
	typeNum := uint64(1) << (bsz - 1)
	pm.intra = make([]uint8, typeNum*bsz*bsz)
	offsets := make([]int, bsz)
	for typ := uint64(0); typ < typeNum; typ++ {
		for j := uint64(1); j < bsz; j++ {
			if typ&(1<<(j-1)) != 0 {
				offsets[j] = offsets[j-1] + 1
			} else {
				offsets[j] = offsets[j-1] - 1
			}
		}
		table := pm.intra[typ*bsz*bsz : (typ+1)*bsz*bsz]
		for l := uint64(0); l < bsz; l++ {
			minPos := l
			for r := l; r < bsz; r++ {
				if offsets[r] < offsets[minPos] {
					minPos = r
				}
				table[l*bsz+r] = uint8(minPos)
			}
		}
	}
}

// inBlock returns the sequence position of the minimum over in-block offsets [l, r].
func (pm *plusMinus) inBlock(blk, l, r uint64) uint64 {
	typ := uint64(pm.types[blk])
	return blk*pm.bsz + uint64(pm.intra[(typ*pm.bsz+l)*pm.bsz+r])
}

// argmin returns a position of the minimum depth in [i, j]. Requires i <= j < Len().
func (pm *plusMinus) argmin(i, j uint64) uint64 {
	lb, rb := i/pm.bsz, j/pm.bsz
	if lb == rb {
		return pm.inBlock(lb, i%pm.bsz, j%pm.bsz)
	}
	best := pm.inBlock(lb, i%pm.bsz, pm.bsz-1)
	bestDepth := pm.seq.Depth(best)
	if c := pm.inBlock(rb, 0, j%pm.bsz); pm.seq.Depth(c) < bestDepth {
		best, bestDepth = c, pm.seq.Depth(c)
	}
	if lb+1 < rb {
		if c := pm.blocks.min(lb+1, rb-1); pm.seq.Depth(c) < bestDepth {
			best = c
		}
	}
	return best
}
