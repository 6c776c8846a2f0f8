// Package gen orchestrates repository indexing and doc generation.
// It coordinates package enumeration, documentation parsing, chunk storage,
// and LLM doc generation. The parsing core itself stays single-pass and
// synchronous; only doc generation fans out.
package gen

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/zjregee/knowlix"
	"golang.org/x/sync/errgroup"
)

// Generator wires the collaborators of one indexing/generation run.
type Generator struct {
	Lister    knowlix.PackageLister
	Loader    knowlix.DocLoader
	Repos     knowlix.RepoService
	Chunks    knowlix.ChunkService
	Store     knowlix.DocService
	Describer knowlix.Describer
	Limiter   knowlix.RequestLimiter

	// Concurrency limits simultaneous doc generation requests.
	Concurrency int

	// RetryDelays are the backoff delays between generation retries.
	RetryDelays []time.Duration

	// Force regenerates docs even when they already exist.
	Force bool

	// MaxItems caps the number of items processed per run. 0 = no limit.
	MaxItems int

	// Generator and Model are recorded on every generated doc.
	Generator string
	Model     string
}

// Result holds the outcome of an indexing or generation run.
type Result struct {
	Packages  int
	Functions int
	Types     int
	Chunks    int
	Docs      int
	Skipped   int
	Failed    int
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Name      string // package import path or item ID
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting progress.
type ProgressFunc func(event ProgressEvent)

// ParseRepo enumerates and parses every package under dir. A failure on one
// package is recorded and the remaining packages are still processed.
func (g *Generator) ParseRepo(ctx context.Context, dir string, progress ProgressFunc) ([]*knowlix.Package, *Result, error) {
	metas, err := g.Lister.ListPackages(ctx, dir)
	if err != nil {
		return nil, nil, err
	}

	result := &Result{}
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(metas)})
	}

	packages := []*knowlix.Package{}
	for i, meta := range metas {
		pkg, err := g.parsePackage(ctx, meta)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: len(metas), Name: meta.ImportPath, Error: err})
			}
			continue
		}

		packages = append(packages, pkg)
		result.Packages++
		result.Functions += len(pkg.Functions)
		result.Types += len(pkg.Types)
		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: len(metas), Name: meta.ImportPath})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(metas), Total: len(metas)})
	}
	return packages, result, nil
}

// parsePackage loads and parses one package's documentation text.
func (g *Generator) parsePackage(ctx context.Context, meta knowlix.PackageMeta) (*knowlix.Package, error) {
	doc, err := g.Loader.LoadDoc(ctx, meta)
	if err != nil {
		return nil, fmt.Errorf("load doc for %s: %w", meta.ImportPath, err)
	}
	return knowlix.ParsePackage(doc, meta)
}

// IndexRepo parses every package under dir and replaces the repo's stored
// chunks with freshly formatted ones.
func (g *Generator) IndexRepo(ctx context.Context, repo *knowlix.Repo, dir string, progress ProgressFunc) (*Result, error) {
	packages, result, err := g.ParseRepo(ctx, dir, progress)
	if err != nil {
		return nil, err
	}

	if err := g.Chunks.DeleteChunksByRepo(ctx, repo.ID); err != nil {
		return nil, err
	}

	position := 0
	for _, pkg := range packages {
		chunks := knowlix.FormatPackage(pkg)
		for _, chunk := range chunks {
			chunk.RepoID = repo.ID
			chunk.Position = position
			position++
		}
		if err := g.Chunks.CreateChunks(ctx, chunks); err != nil {
			return nil, err
		}
		result.Chunks += len(chunks)
	}

	return result, nil
}

// GenerateDocs generates Markdown docs for the given items and writes them
// to the doc store under the repo slug and version. Existing docs are
// skipped unless Force is set. One item's failure never aborts the run.
func (g *Generator) GenerateDocs(ctx context.Context, repoSlug, version string, items []knowlix.Item, progress ProgressFunc) (*Result, error) {
	if g.MaxItems > 0 && len(items) > g.MaxItems {
		items = items[:g.MaxItems]
	}

	concurrency := g.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(items)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	var completed, docs, skipped, failed atomic.Int64

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	for _, item := range items {
		eg.Go(func() error {
			done := int(completed.Add(1))

			if !g.Force && g.Store.ExistsDoc(gctx, repoSlug, version, item) {
				skipped.Add(1)
				if progress != nil {
					progress(ProgressEvent{Type: ProgressCompleted, Completed: done, Total: total, Name: item.ID})
				}
				return nil
			}

			if g.Limiter != nil {
				if err := g.Limiter.Wait(gctx); err != nil {
					return err
				}
			}

			content, err := DescribeWithRetryDelays(gctx, item, g.Describer.Describe, nil, g.RetryDelays)
			if err == nil {
				_, err = g.Store.CreateDoc(gctx, repoSlug, version, &knowlix.GeneratedDoc{
					Item:        item,
					Content:     content,
					GeneratedAt: time.Now().UTC(),
					Generator:   g.Generator,
					Model:       g.Model,
				})
			}
			if err != nil {
				// Record and continue: one item must not abort the batch.
				failed.Add(1)
				if progress != nil {
					progress(ProgressEvent{Type: ProgressFailed, Completed: done, Total: total, Name: item.ID, Error: err})
				}
				return nil
			}

			docs.Add(1)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressCompleted, Completed: done, Total: total, Name: item.ID})
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &Result{
		Docs:    int(docs.Load()),
		Skipped: int(skipped.Load()),
		Failed:  int(failed.Load()),
	}, nil
}
