// Package profiling wraps runtime/pprof CPU capture for the CLI.
package profiling

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"
)

// StartCPU begins writing a CPU profile to path. The returned stop function
// is safe to call more than once.
func StartCPU(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("start cpu profile: %w", err)
	}
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		})
	}
	return stop, nil
}
