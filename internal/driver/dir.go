package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"gqlgrammar/internal/diag"
	"gqlgrammar/internal/observ"
	"gqlgrammar/internal/source"
	"gqlgrammar/internal/trace"
)

// ParseDirResult is the outcome for one file of a directory parse.
type ParseDirResult struct {
	Path   string
	FileID source.FileID
	Node   any
	Bag    *diag.Bag
	Timing observ.Report
}

// listGraphQLFiles returns every *.graphql and *.gql file under dir, sorted.
func listGraphQLFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".graphql", ".gql":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// ParseDir parses every GraphQL file under dir with up to jobs workers,
// GOMAXPROCS when jobs <= 0. Results follow path order. A file that fails
// to load gets an I/O diagnostic instead of aborting the run.
func ParseDir(ctx context.Context, dir string, req Request, jobs int) (*source.FileSet, []ParseDirResult, error) {
	files, err := listGraphQLFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSet()
	fileSet.SetBaseDir(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet is not safe for concurrent Load; load everything up front.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			// an empty placeholder keeps the diagnostic attached to its path
			id = fileSet.AddVirtual(path, nil)
			loadErrors[path] = err
		}
		fileIDs[path] = id
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if req.Tracer == nil {
		req.Tracer = trace.FromContext(ctx)
	}
	root := trace.Begin(req.Tracer, trace.ScopeDriver, "parse-dir", 0).WithExtra("dir", dir)
	defer root.End("")

	// each index is written by exactly one goroutine
	results := make([]ParseDirResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			id := fileIDs[path]
			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(req.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: id}, "failed to load file: "+loadErr.Error()))
				results[i] = ParseDirResult{Path: path, FileID: id, Bag: bag}
				return nil
			}
			res := parseFile(fileSet, id, req, root.ID())
			results[i] = ParseDirResult{Path: path, FileID: id, Node: res.Node, Bag: res.Bag, Timing: res.Timing}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
