// Package filesystem discovers project page dumps in a local directory tree.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/logger"
)

// Verify interface compliance at compile time.
var (
	_ driven.DocumentSource = (*Connector)(nil)
	_ driven.SourceFactory  = (*Factory)(nil)
)

// Connector walks a root directory and yields its files in lexical order.
type Connector struct {
	rootPath string
	opts     domain.DiscoveryOptions

	mu      sync.Mutex
	closed  bool
	watcher *fsnotify.Watcher
}

// New creates a filesystem connector rooted at rootPath.
func New(rootPath string, opts domain.DiscoveryOptions) *Connector {
	return &Connector{
		rootPath: rootPath,
		opts:     opts,
	}
}

// Root returns the root directory.
func (c *Connector) Root() string {
	return c.rootPath
}

// Validate checks the root exists and is a directory.
func (c *Connector) Validate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(c.rootPath)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("root path does not exist: %s", c.rootPath)
	}
	if err != nil {
		return fmt.Errorf("checking root path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path is not a directory: %s", c.rootPath)
	}
	return nil
}

// FullSync walks the tree and streams every matching file.
//
// Both channels are unbuffered and are written by a single goroutine, so a
// consumer selecting on both sees documents and read errors in discovery
// order. A root error is sent after the document channel is closed.
func (c *Connector) FullSync(ctx context.Context) (<-chan domain.RawDocument, <-chan error) {
	docs := make(chan domain.RawDocument)
	errs := make(chan error)

	go func() {
		defer close(errs)

		if err := c.Validate(ctx); err != nil {
			close(docs)
			if !errors.Is(err, context.Canceled) {
				sendErr(ctx, errs, err)
			}
			return
		}

		defer close(docs)
		count := 0
		walkErr := filepath.WalkDir(c.rootPath, func(path string, d fs.DirEntry, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if err != nil {
				if path == c.rootPath {
					return err
				}
				sendErr(ctx, errs, &domain.ReadError{URI: path, Err: err})
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path != c.rootPath && c.opts.SkipHidden && isHidden(c.rel(path)) {
					return fs.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || !c.wants(path) {
				return nil
			}

			if c.opts.Limit > 0 && count >= c.opts.Limit {
				return fs.SkipAll
			}
			count++

			doc, err := c.read(path)
			if err != nil {
				sendErr(ctx, errs, err)
				return nil
			}

			select {
			case docs <- *doc:
			case <-ctx.Done():
				return ctx.Err()
			}
			return nil
		})

		if walkErr != nil && !errors.Is(walkErr, context.Canceled) {
			sendErr(ctx, errs, fmt.Errorf("walking %s: %w", c.rootPath, walkErr))
		}
	}()

	return docs, errs
}

// Watch emits change events for files below the root until ctx is
// cancelled. Directories created later are watched too.
func (c *Connector) Watch(ctx context.Context) (<-chan domain.RawDocumentChange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, fmt.Errorf("watch: %w", domain.ErrSourceClosed)
	}
	if err := c.Validate(ctx); err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := c.addTree(watcher, c.rootPath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", c.rootPath, err)
	}
	c.watcher = watcher

	changes := make(chan domain.RawDocumentChange)
	go func() {
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						if err := c.addTree(watcher, event.Name); err != nil {
							logger.Warn("watching %s: %v", event.Name, err)
						}
						continue
					}
				}
				change := c.handleFsEvent(event)
				if change == nil {
					continue
				}
				select {
				case changes <- *change:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error: %v", err)
			}
		}
	}()

	return changes, nil
}

// Close stops any active watch. It is safe to call more than once.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	if c.watcher != nil {
		err := c.watcher.Close()
		c.watcher = nil
		return err
	}
	return nil
}

// handleFsEvent converts a filesystem event into a change, or nil when the
// event concerns a directory, a filtered file, or only a mode change.
func (c *Connector) handleFsEvent(event fsnotify.Event) *domain.RawDocumentChange {
	path := event.Name
	if !c.wants(path) {
		return nil
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return &domain.RawDocumentChange{
			Type:     domain.ChangeDeleted,
			Document: domain.RawDocument{URI: path, Name: filepath.Base(path), MIMEType: detectMIMEType(path)},
		}
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return nil
		}
		doc, err := c.read(path)
		if err != nil {
			logger.Debug("watch: %v", err)
			return nil
		}
		typ := domain.ChangeUpdated
		if event.Has(fsnotify.Create) {
			typ = domain.ChangeCreated
		}
		return &domain.RawDocumentChange{Type: typ, Document: *doc}
	default:
		return nil
	}
}

func (c *Connector) addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != c.rootPath && c.opts.SkipHidden && isHidden(c.rel(path)) {
			return fs.SkipDir
		}
		return watcher.Add(path)
	})
}

func (c *Connector) read(path string) (*domain.RawDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ReadError{URI: path, Err: err}
	}
	return &domain.RawDocument{
		URI:      path,
		Name:     filepath.Base(path),
		MIMEType: detectMIMEType(path),
		Content:  content,
	}, nil
}

// wants reports whether a file path is a candidate document. Only wanted
// files count towards the limit.
func (c *Connector) wants(path string) bool {
	if c.opts.SkipHidden && isHidden(c.rel(path)) {
		return false
	}
	if c.opts.Exclude != nil && c.opts.Exclude(path) {
		return false
	}
	return c.accepts(path)
}

// accepts applies the extension filter.
func (c *Connector) accepts(path string) bool {
	if len(c.opts.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, want := range c.opts.Extensions {
		if strings.ToLower(strings.TrimPrefix(want, ".")) == ext {
			return true
		}
	}
	return false
}

// rel returns path relative to the root, so a root below a dot-directory
// does not hide everything.
func (c *Connector) rel(path string) string {
	rel, err := filepath.Rel(c.rootPath, path)
	if err != nil {
		return path
	}
	return rel
}

func sendErr(ctx context.Context, errs chan<- error, err error) {
	select {
	case errs <- err:
	case <-ctx.Done():
	}
}

// isHidden reports whether any component of path starts with a dot.
// "." and ".." are not hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "." || part == ".." {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// detectMIMEType guesses the content type from the extension. Page dumps
// usually carry no extension and are plain text.
func detectMIMEType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "text/plain"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		if i := strings.Index(t, ";"); i >= 0 {
			t = t[:i]
		}
		return strings.TrimSpace(t)
	}
	return "application/octet-stream"
}

// Factory opens filesystem connectors.
type Factory struct{}

// NewFactory creates a connector factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open creates a connector rooted at root.
func (f *Factory) Open(root string, opts domain.DiscoveryOptions) (driven.DocumentSource, error) {
	if root == "" {
		return nil, fmt.Errorf("root path is empty: %w", domain.ErrInvalidInput)
	}
	return New(root, opts), nil
}
