package utils

import (
	"fmt"
	"math"
	"runtime"
)

// GetMemUsage summarizes the Go heap for progress logs
func GetMemUsage() string {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	const MiB = 1 << 20
	return fmt.Sprintf("heap %.1f MiB in use, %.1f MiB from the OS, %d GC cycles",
		float64(ms.HeapInuse)/MiB, float64(ms.Sys)/MiB, ms.NumGC)
}

// IsNan reports a NaN or Inf anywhere in A
func IsNan(A any) bool {
	bad := func(f float64) bool {
		return math.IsNaN(f) || math.IsInf(f, 0)
	}
	switch v := A.(type) {
	case float64:
		return bad(v)
	case []float64:
		for _, f := range v {
			if bad(f) {
				return true
			}
		}
	case *Array4:
		return IsNan(v.DataP)
	case []*Array4:
		for _, a := range v {
			if IsNan(a) {
				return true
			}
		}
	}
	return false
}
