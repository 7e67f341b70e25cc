package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"optlint/internal/diag"
	"optlint/internal/metrics"
	"optlint/internal/source"
)

// EventStatus is the lifecycle state of one file during a directory
// check.
type EventStatus uint8

const (
	EventQueued EventStatus = iota
	EventChecking
	EventDone
	EventError
)

// Event is a progress notification for one file.
type Event struct {
	Path   string
	Status EventStatus
}

// DirOptions configures CheckDir.
type DirOptions struct {
	Options
	Extensions []string      // file extensions to check; defaults to .php
	Exclude    []string      // directory basenames to skip
	Jobs       int           // parallel workers; 0 means GOMAXPROCS
	Events     chan<- Event  // optional progress sink, closed by CheckDir
}

func (o DirOptions) extensions() []string {
	if len(o.Extensions) == 0 {
		return []string{".php"}
	}
	return o.Extensions
}

// ListFiles returns the sorted matching files under dir, honouring the
// exclusion list.
func ListFiles(dir string, opts DirOptions) ([]string, error) {
	exts := opts.extensions()
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			for _, ex := range opts.Exclude {
				if matched, _ := filepath.Match(ex, d.Name()); matched {
					return filepath.SkipDir
				}
			}
			return nil
		}
		for _, ext := range exts {
			if strings.HasSuffix(path, ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// CheckDir checks every matching file under dir in parallel. Results
// come back in the deterministic file order regardless of scheduling;
// each worker writes only its own slot.
func CheckDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []*FileResult, error) {
	defer func() {
		if opts.Events != nil {
			close(opts.Events)
		}
	}()

	files, err := ListFiles(dir, opts)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	emit := func(path string, status EventStatus) {
		if opts.Events != nil {
			opts.Events <- Event{Path: path, Status: status}
		}
	}

	// FileSet mutation is not concurrency-safe; preload sequentially and
	// keep the parallel phase read-only.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		emit(path, EventQueued)
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	results := make([]*FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			emit(path, EventChecking)

			if loadErr, ok := loadErrors[path]; ok {
				bag := diag.NewBag(opts.maxDiagnostics())
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+loadErr.Error()))
				results[i] = &FileResult{
					Path:    path,
					Bag:     bag,
					Metrics: metrics.NewCollector(),
				}
				emit(path, EventError)
				return nil
			}

			results[i] = checkLoaded(fileSet, fileIDs[path], path, opts.Options, nil)
			if results[i].Bag.HasErrors() {
				emit(path, EventError)
			} else {
				emit(path, EventDone)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, nil, err
	}
	return fileSet, results, nil
}
