// Package scanner orchestrates metadata extraction across packaging units.
//
// Each unit gets its own result store, mutated only by the goroutine
// processing that unit; concurrency exists between units, never within one.
package scanner

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/StinkyLord/metacompose/internal/result"
	"github.com/StinkyLord/metacompose/internal/strategies"
	"github.com/StinkyLord/metacompose/internal/unit"
)

// Scanner processes packaging units into per-unit results.
type Scanner struct {
	// Workers is the number of units processed in parallel. Values < 1
	// mean sequential processing.
	Workers int

	Logger *log.Logger
}

// New creates a Scanner.
func New(workers int, logger *log.Logger) *Scanner {
	if logger == nil {
		logger = log.Default()
	}
	return &Scanner{Workers: workers, Logger: logger}
}

// ProcessUnits runs ProcessUnit over all units, up to Workers at a time.
// The returned slice is index-aligned with units.
func (s *Scanner) ProcessUnits(units []unit.Unit) []*result.Result {
	workers := s.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(units) {
		workers = len(units)
	}

	results := make([]*result.Result, len(units))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = s.ProcessUnit(units[i])
			}
		}()
	}
	for i := range units {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// ProcessUnit composes a single unit into a fresh result store.
func (s *Scanner) ProcessUnit(u unit.Unit) *result.Result {
	res := result.New()
	res.SetBundleKind(u.BundleKind())
	res.SetBundleID(u.ID())

	files, err := u.ListFiles()
	if err != nil {
		s.Logger.Warn("failed to list unit files", "unit", u.ID(), "err", err)
		res.AddHint(u.ID(), "internal-error", "msg", err.Error())
		return res
	}

	metainfo := &strategies.MetainfoStrategy{}
	for _, fname := range files {
		if !metainfo.Claims(fname) {
			continue
		}
		s.Logger.Debug("processing metainfo", "unit", u.ID(), "file", fname)
		metainfo.Process(u, fname, res)
	}

	// second pass: desktop data contributes to the components' GCID chains
	strategies.MergeDesktopData(u, files, res)

	if res.UnitIgnored() {
		s.Logger.Debug("unit ignored", "unit", u.ID())
	} else {
		s.Logger.Info("unit composed",
			"unit", u.ID(),
			"components", res.ComponentsCount(),
			"hints", res.HintsCount())
	}
	return res
}
