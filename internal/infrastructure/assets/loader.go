package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

// Loader decodes the manifest images in the background. Files that fail to
// load are replaced with placeholders and still count as loaded.
type Loader struct {
	fsys        fs.FS
	entries     []Entry
	concurrency int

	mu     sync.Mutex
	images map[string]image.Image

	loaded  atomic.Int32
	failed  atomic.Int32
	started atomic.Bool
	done    chan struct{}
}

// NewLoader creates a loader for the given entries. fsys may be nil, in which
// case every entry gets a placeholder.
func NewLoader(fsys fs.FS, entries []Entry, concurrency int) *Loader {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Loader{
		fsys:        fsys,
		entries:     entries,
		concurrency: concurrency,
		images:      make(map[string]image.Image, len(entries)),
		done:        make(chan struct{}),
	}
}

// Start begins loading. It returns immediately; poll Progress or wait on Done.
func (l *Loader) Start(ctx context.Context) {
	if !l.started.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer close(l.done)
		if err := l.run(ctx); err != nil {
			log.Printf("assets: loading stopped: %v", err)
		}
	}()
}

func (l *Loader) run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for _, e := range l.entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := l.decode(e.Path)
			if err != nil {
				log.Printf("assets: %s: %v, using placeholder", e.Key, err)
				img = Placeholder(e.Key)
				l.failed.Add(1)
			}
			l.mu.Lock()
			l.images[e.Key] = img
			l.mu.Unlock()
			l.loaded.Add(1)
			return nil
		})
	}
	return g.Wait()
}

func (l *Loader) decode(path string) (image.Image, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("no asset directory")
	}
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// Progress returns the number of finished and total entries
func (l *Loader) Progress() (loaded, total int) {
	return int(l.loaded.Load()), len(l.entries)
}

// Percent returns the completed share in [0,100]
func (l *Loader) Percent() int {
	loaded, total := l.Progress()
	if total == 0 {
		return 100
	}
	return loaded * 100 / total
}

// Failed returns how many entries fell back to placeholders
func (l *Loader) Failed() int {
	return int(l.failed.Load())
}

// Complete reports whether every entry has been loaded
func (l *Loader) Complete() bool {
	loaded, total := l.Progress()
	return loaded == total
}

// Done is closed when the background load finishes
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Images returns a snapshot of the decoded images by key
func (l *Loader) Images() map[string]image.Image {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]image.Image, len(l.images))
	for k, v := range l.images {
		out[k] = v
	}
	return out
}
