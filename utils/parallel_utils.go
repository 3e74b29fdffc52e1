package utils

import (
	"runtime"
	"sync"

	"github.com/notargets/ebdiffusion/types"
)

// PartitionMap splits the index range [0, MaxIndex) into ParallelDegree
// contiguous buckets whose sizes differ by at most one
type PartitionMap struct {
	MaxIndex       int
	ParallelDegree int
	Partitions     [][2]int // [begin, end) of each bucket
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	ParallelDegree = max(ParallelDegree, 1)
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := range pm.Partitions {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

// Split1D is the range of bucket threadNum. The first MaxIndex%ParallelDegree
// buckets carry one extra item.
func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	var (
		size  = pm.MaxIndex / pm.ParallelDegree
		extra = pm.MaxIndex % pm.ParallelDegree
	)
	bucket[0] = threadNum*size + min(threadNum, extra)
	bucket[1] = bucket[0] + size
	if threadNum < extra {
		bucket[1]++
	}
	return
}

// SlabDirection is the direction a box is cut along for the parallel sweep,
// the outermost one carrying more than a single cell
func SlabDirection(bx types.Box) (dir int) {
	for dir = types.MaxDim - 1; dir > 0; dir-- {
		if bx.Length(dir) > 1 {
			return
		}
	}
	return
}

// BoxSlabs cuts bx into at most ParallelDegree slabs normal to the slab
// direction. Empty slabs are omitted.
func BoxSlabs(bx types.Box, ParallelDegree int) (slabs []types.Box) {
	var (
		dir = SlabDirection(bx)
		pm  = NewPartitionMap(ParallelDegree, bx.Length(dir))
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		kMin, kMax := pm.GetBucketRange(np)
		if kMax == kMin {
			continue
		}
		slab := bx
		slab.Lo[dir] = bx.Lo[dir] + kMin
		slab.Hi[dir] = bx.Lo[dir] + kMax - 1
		slabs = append(slabs, slab)
	}
	return
}

// ParallelForSlabs runs f on each slab of bx in its own goroutine and waits.
// The thread number passed to f indexes per-thread scratch storage.
func ParallelForSlabs(bx types.Box, ParallelDegree int, f func(threadNum int, slab types.Box)) {
	var (
		slabs = BoxSlabs(bx, ParallelDegree)
		wg    = sync.WaitGroup{}
	)
	for np, slab := range slabs {
		wg.Add(1)
		go func(np int, slab types.Box) {
			f(np, slab)
			wg.Done()
		}(np, slab)
	}
	wg.Wait()
}

// GetParallelDegree returns ProcLimit, or the CPU count when ProcLimit is
// zero, never more than the number of work items
func GetParallelDegree(ProcLimit, Kmax int) (ParallelDegree int) {
	if ProcLimit != 0 {
		ParallelDegree = ProcLimit
	} else {
		ParallelDegree = runtime.NumCPU()
	}
	if ParallelDegree > Kmax {
		ParallelDegree = max(Kmax, 1)
	}
	return
}
