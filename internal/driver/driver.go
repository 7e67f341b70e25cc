// Package driver wires loading, lexing, analysis, caching and timing
// into whole-file and whole-directory checks.
package driver

import (
	"optlint/internal/analyze"
	"optlint/internal/diag"
	"optlint/internal/lexer"
	"optlint/internal/metrics"
	"optlint/internal/observ"
	"optlint/internal/source"
	"optlint/internal/token"
)

// Options configures a check run.
type Options struct {
	MaxDiagnostics int
	Cache          *DiskCache // nil disables caching
}

// FileResult is the outcome of checking one file.
type FileResult struct {
	Path      string
	FileID    source.FileID
	Bag       *diag.Bag
	Metrics   *metrics.Collector
	Timing    observ.Report
	FromCache bool
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 1000
	}
	return o.MaxDiagnostics
}

// CheckFile loads and checks a single file. I/O failures become an
// IOLoadFileError diagnostic rather than an error return; the error is
// reserved for cache faults.
func CheckFile(fs *source.FileSet, path string, opts Options) *FileResult {
	timer := observ.NewTimer()

	phase := timer.Begin("load")
	fileID, err := fs.Load(path)
	timer.End(phase, "")
	if err != nil {
		bag := diag.NewBag(opts.maxDiagnostics())
		bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+err.Error()))
		return &FileResult{
			Path:    path,
			Bag:     bag,
			Metrics: metrics.NewCollector(),
			Timing:  timer.Report(),
		}
	}

	return checkLoaded(fs, fileID, path, opts, timer)
}

// checkLoaded runs the lex and analyze phases over an already loaded
// file, consulting the cache first.
func checkLoaded(fs *source.FileSet, fileID source.FileID, path string, opts Options, timer *observ.Timer) *FileResult {
	if timer == nil {
		timer = observ.NewTimer()
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.maxDiagnostics())
	col := metrics.NewCollector()

	if opts.Cache != nil {
		var payload DiskPayload
		if hit, err := opts.Cache.Get(file.Hash, &payload); err == nil && hit {
			replayPayload(&payload, fileID, bag, col)
			return &FileResult{
				Path:      path,
				FileID:    fileID,
				Bag:       bag,
				Metrics:   col,
				Timing:    timer.Report(),
				FromCache: true,
			}
		}
	}

	reporter := diag.BagReporter{Bag: bag}

	phase := timer.Begin("lex")
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	stream := token.NewStream(lx.Tokens())
	timer.End(phase, "")

	phase = timer.Begin("analyze")
	analyze.New(stream, file, reporter, col).Run()
	timer.End(phase, "")

	bag.Sort()

	if opts.Cache != nil {
		// cache faults never fail the check
		_ = opts.Cache.Put(file.Hash, buildPayload(bag, col))
	}

	return &FileResult{
		Path:    path,
		FileID:  fileID,
		Bag:     bag,
		Metrics: col,
		Timing:  timer.Report(),
	}
}

// TokenizeFile loads one file and returns its token slice, for the
// debug token dump.
func TokenizeFile(fs *source.FileSet, path string, maxDiagnostics int) ([]token.Token, *diag.Bag, error) {
	bag := diag.NewBag(maxDiagnostics)
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, bag, err
	}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx.Tokens(), bag, nil
}
