package pipeline

import (
	"context"
	"log"
	"runtime"
	"sync"

	"github.com/cearch/cearch/internal/constants"
	"github.com/cearch/cearch/internal/embeddings"
	"github.com/cearch/cearch/internal/gitrepo"
	"github.com/cearch/cearch/internal/indexer"
	"github.com/cearch/cearch/internal/models"
	"github.com/cearch/cearch/internal/parser"
	"github.com/cearch/cearch/internal/storage"
)

type Options struct {
	ParseWorkers   int
	EmbedBatchSize int
}

// Indexer drives the full build: list tracked files, extract symbols with a
// bounded worker pool, then embed and persist through a single ordered
// stage. Parsing is the only parallel stage; the embedding model and the
// store are the serialization points.
type Indexer struct {
	p   parser.Parser
	e   embeddings.Embedder
	vec storage.VectorStore
	opt Options
}

func New(
	p parser.Parser,
	e embeddings.Embedder,
	v storage.VectorStore,
	opt Options,
) *Indexer {
	if opt.ParseWorkers <= 0 {
		opt.ParseWorkers = runtime.NumCPU()
	}
	if opt.EmbedBatchSize <= 0 {
		opt.EmbedBatchSize = constants.DefaultEmbedBatchSize
	}
	return &Indexer{p: p, e: e, vec: v, opt: opt}
}

func (i *Indexer) IndexRepo(ctx context.Context, root string) error {
	progCh, errCh := i.IndexRepoProgress(ctx, root)
	for range progCh {
	}
	return <-errCh
}

func (i *Indexer) IndexRepoProgress(
	ctx context.Context,
	root string,
) (<-chan models.IndexProgress, <-chan error) {
	progCh := make(chan models.IndexProgress, 16)
	errCh := make(chan error, 1)
	go func() {
		defer close(progCh)
		defer close(errCh)
		errCh <- i.run(ctx, root, progCh)
	}()
	return progCh, errCh
}

type parseResult struct {
	path string
	syms []models.Symbol
	err  error
}

func (i *Indexer) run(
	ctx context.Context,
	root string,
	progCh chan<- models.IndexProgress,
) error {
	files, err := gitrepo.ListTrackedFiles(root)
	if err != nil {
		return err
	}
	emit(progCh, models.IndexProgress{
		Stage:      models.IndexStageScan,
		TotalFiles: len(files),
	})

	// Stage 1: parse files concurrently
	parseCh := make(chan string, len(files))
	resCh := make(chan parseResult, len(files))
	var wgParse sync.WaitGroup
	for w := 0; w < i.opt.ParseWorkers; w++ {
		wgParse.Add(1)
		go func() {
			defer wgParse.Done()
			for f := range parseCh {
				syms, err := i.p.ExtractFile(f)
				resCh <- parseResult{path: f, syms: syms, err: err}
			}
		}()
	}
	for _, f := range files {
		parseCh <- f
	}
	close(parseCh)
	go func() { wgParse.Wait(); close(resCh) }()

	// Stage 2: collect, embed in batches, persist
	st := &runState{progCh: progCh, totalFiles: len(files)}
	var batch []models.Symbol
	for r := range resCh {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		st.parsedFiles++
		if r.err != nil {
			// file-level failures are non-fatal and isolated
			log.Printf("warn: parse %s: %v", r.path, r.err)
			continue
		}
		st.totalSymbols += len(r.syms)
		st.emitParse(r.path)
		batch = append(batch, r.syms...)
		for len(batch) >= i.opt.EmbedBatchSize {
			i.flush(batch[:i.opt.EmbedBatchSize], st)
			batch = batch[i.opt.EmbedBatchSize:]
		}
	}
	i.flush(batch, st)

	emit(progCh, models.IndexProgress{
		Stage:           models.IndexStageDone,
		TotalFiles:      len(files),
		ParsedFiles:     st.parsedFiles,
		TotalSymbols:    st.totalSymbols,
		EmbeddedSymbols: st.embedded,
		Percent:         1,
	})
	return nil
}

// flush embeds one batch and persists each (symbol, vector) pair. A failed
// embed drops the whole batch; a failed insert skips that one symbol. Both
// are warnings, never fatal.
func (i *Indexer) flush(syms []models.Symbol, st *runState) {
	if len(syms) == 0 {
		return
	}
	texts := make([]string, len(syms))
	for idx, sym := range syms {
		texts[idx] = sym.Code
	}
	vecs, err := i.e.EmbedTexts(texts)
	if err != nil {
		log.Printf("warn: embed batch of %d symbols: %v", len(syms), err)
		return
	}
	for idx, sym := range syms {
		if err := i.vec.Insert(sym, vecs[idx]); err != nil {
			log.Printf("warn: insert %s (%s:%d): %v", sym.Name, sym.Path, sym.Line, err)
			continue
		}
		st.embedded++
	}
	st.emitEmbed()
}

type runState struct {
	progCh       chan<- models.IndexProgress
	totalFiles   int
	parsedFiles  int
	totalSymbols int
	embedded     int
}

func (st *runState) emitParse(current string) {
	emit(st.progCh, models.IndexProgress{
		Stage:           models.IndexStageParse,
		TotalFiles:      st.totalFiles,
		ParsedFiles:     st.parsedFiles,
		TotalSymbols:    st.totalSymbols,
		EmbeddedSymbols: st.embedded,
		CurrentFile:     current,
		Percent:         st.percent(),
	})
}

func (st *runState) emitEmbed() {
	emit(st.progCh, models.IndexProgress{
		Stage:           models.IndexStageEmbed,
		TotalFiles:      st.totalFiles,
		ParsedFiles:     st.parsedFiles,
		TotalSymbols:    st.totalSymbols,
		EmbeddedSymbols: st.embedded,
		Percent:         st.percent(),
	})
}

func (st *runState) percent() float32 {
	if st.totalFiles == 0 {
		return 1
	}
	return float32(st.parsedFiles) / float32(st.totalFiles)
}

// emit drops updates nobody is draining rather than stalling the pipeline.
func emit(ch chan<- models.IndexProgress, p models.IndexProgress) {
	select {
	case ch <- p:
	default:
	}
}

var _ indexer.Indexer = (*Indexer)(nil)
