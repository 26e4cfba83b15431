package hls

import (
	"fmt"
	"sync"

	"github.com/turtletowerz/go-hls/logging"
	"github.com/turtletowerz/go-hls/m3u8"
)

// ProgressFunc represents the function type
// required to be passed to the SetProgressFunc method
type ProgressFunc func(int, int) error

// WarningFunc represents the function type
// required to be passed to the SetWarningFunc method
type WarningFunc func(string, m3u8.Warning)

// Result holds the outcome of validating one playlist file.
// Exactly one of Lines and Err is set
type Result struct {
	Path  string
	Lines *m3u8.LineSet
	Err   error
}

// Validator is the struct which contains all of the
// information and methods to validate playlist files
type Validator struct {
	sync.Mutex
	threads   int
	keepBlank bool
	complete  int
	progress  ProgressFunc
	warn      WarningFunc
	observer  m3u8.Observer
}

// SetProgressFunc assigns a function that gets called after every file that is
// validated. Returning an error stops the remaining files from being validated
func (v *Validator) SetProgressFunc(f ProgressFunc) {
	v.progress = f
}

// SetWarningFunc assigns a function that gets called for every dropped line.
// Calls are serialized, so f does not need to be safe for concurrent use
func (v *Validator) SetWarningFunc(f WarningFunc) {
	v.warn = f
}

// SetObserver assigns an Observer that is handed to every Collector.
// It must be safe for concurrent use
func (v *Validator) SetObserver(o m3u8.Observer) {
	v.observer = o
}

// SetKeepBlank makes empty lines show up as m3u8.Blank
func (v *Validator) SetKeepBlank(keep bool) {
	v.keepBlank = keep
}

func (v *Validator) validateFile(path string) Result {
	c := m3u8.NewCollector()
	c.SetKeepBlank(v.keepBlank)
	c.SetObserver(v.observer)
	if v.warn != nil {
		c.SetWarningFunc(func(w m3u8.Warning) {
			v.Lock()
			defer v.Unlock()
			v.warn(path, w)
		})
	}

	set, err := c.CollectFile(path)
	if err != nil {
		logging.Debug("validating %s: %v", path, err)
		return Result{Path: path, Err: err}
	}
	return Result{Path: path, Lines: set}
}

// ValidateFiles validates every path, each with its own Collector, using
// the configured number of threads. Results are returned in the order of paths.
// The error is only set when the progress func asked to stop
func (v *Validator) ValidateFiles(paths []string) ([]Result, error) {
	results := make([]Result, len(paths))
	indexes := make([]int, len(paths))
	for i, path := range paths {
		indexes[i] = i
		results[i].Path = path
	}

	v.complete = 0
	var stopErr error

	var wg sync.WaitGroup
	for i := 0; i < v.threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				v.Lock()
				if len(indexes) == 0 || stopErr != nil {
					v.Unlock()
					return
				}
				idx := indexes[0]
				indexes = indexes[1:]
				v.Unlock()

				res := v.validateFile(paths[idx])

				v.Lock()
				results[idx] = res
				v.complete++
				if v.progress != nil && stopErr == nil {
					if err := v.progress(v.complete, len(paths)); err != nil {
						stopErr = fmt.Errorf("progress func error: %w", err)
					}
				}
				v.Unlock()
			}
		}()
	}

	wg.Wait()
	if stopErr != nil {
		for _, idx := range indexes {
			results[idx].Err = fmt.Errorf("skipped: %w", stopErr)
		}
		return results, stopErr
	}
	return results, nil
}

// New creates a new validator for the user to validate playlists with
func New(threads int) *Validator {
	if threads < 1 {
		threads = 1
	}
	return &Validator{threads: threads}
}
