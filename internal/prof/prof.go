// Package prof wraps runtime/pprof for the --cpu-profile and --mem-profile
// CLI flags.
package prof

import (
	"errors"
	"os"
	"runtime"
	"runtime/pprof"
)

// Session is an active profiling run. The zero value profiles nothing.
type Session struct {
	cpu     *os.File
	memPath string
}

// Start begins CPU profiling into cpuPath and remembers memPath for the
// heap profile written by Stop. Empty paths disable the profile.
func Start(cpuPath, memPath string) (*Session, error) {
	s := &Session{memPath: memPath}
	if cpuPath == "" {
		return s, nil
	}
	f, err := os.Create(cpuPath)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	s.cpu = f
	return s, nil
}

// Stop ends CPU profiling and writes the heap profile. Calling it again is
// a no-op.
func (s *Session) Stop() error {
	var errs []error
	if s.cpu != nil {
		pprof.StopCPUProfile()
		errs = append(errs, s.cpu.Close())
		s.cpu = nil
	}
	if s.memPath != "" {
		errs = append(errs, writeHeap(s.memPath))
		s.memPath = ""
	}
	return errors.Join(errs...)
}

func writeHeap(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	runtime.GC()
	return pprof.WriteHeapProfile(f)
}
