package utils

import (
	"runtime"
	"sync"
)

type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	if ParallelDegree <= 0 {
		ParallelDegree = runtime.NumCPU()
	}
	if ParallelDegree > maxIndex {
		ParallelDegree = 1
	}
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	return split1D(pm.MaxIndex, pm.ParallelDegree, threadNum)
}

// split1D splits maxIndex items into parallelDegree pieces, with a maximum imbalance of one item
func split1D(maxIndex, parallelDegree, threadNum int) (bucket [2]int) {
	var (
		Npart            = maxIndex / parallelDegree
		startAdd, endAdd int
		remainder        int
	)
	remainder = maxIndex % parallelDegree
	if remainder != 0 { // spread the remainder over the first chunks evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}

// Execute calls f once per partition of [0, n) with the half open range
// [iMin, iMax) and waits for every call to return. A nil receiver runs f
// serially. When n differs from MaxIndex the range is split on the fly and
// the map is left unchanged.
func (pm *PartitionMap) Execute(n int, f func(iMin, iMax int)) {
	if pm == nil || pm.ParallelDegree == 1 || n < pm.ParallelDegree {
		f(0, n)
		return
	}
	var wg sync.WaitGroup
	for np := 0; np < pm.ParallelDegree; np++ {
		bucket := split1D(n, pm.ParallelDegree, np)
		if n == pm.MaxIndex {
			bucket = pm.Partitions[np]
		}
		wg.Add(1)
		go func(iMin, iMax int) {
			f(iMin, iMax)
			wg.Done()
		}(bucket[0], bucket[1])
	}
	wg.Wait()
}
