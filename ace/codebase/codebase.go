// Package codebase keeps the parsed ACE files of a workspace and answers the
// editor questions asked about them: completions, hover text, outlines and
// diagnostics. It also hosts the language server built on top of it.
package codebase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/acels/ace/parser"
	"github.com/dhamidi/acels/config"
)

var log = commonlog.GetLogger("acels.codebase")

type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	cfg     *config.Config
	parser  *parser.Parser
	files   map[string]*FileInfo
}

// FileInfo is one parsed file. It is replaced, never modified, when the file
// changes.
type FileInfo struct {
	Path     string
	Content  string
	Document *parser.Document
}

// New returns an empty codebase rooted at rootDir. A nil cfg means
// config.Defaults.
func New(rootDir string, cfg *config.Config) *Codebase {
	if cfg == nil {
		cfg = config.Defaults()
	}
	var opts []parser.Option
	if cfg.Parse.Recover {
		opts = append(opts, parser.WithRecovery())
	}
	return &Codebase{
		rootDir: rootDir,
		cfg:     cfg,
		parser:  parser.New(opts...),
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

func (c *Codebase) Config() *config.Config {
	return c.cfg
}

// Collect returns the workspace files under the given roots, sorted. A root
// naming a file is returned as is; directories are walked, skipping hidden
// ones.
func (c *Codebase) Collect(roots ...string) ([]string, error) {
	var files []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if strings.HasPrefix(d.Name(), ".") && path != root {
					return filepath.SkipDir
				}
				return nil
			}
			if c.cfg.HasExtension(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

// ScanAll parses every workspace file under the root directory.
func (c *Codebase) ScanAll(ctx context.Context) error {
	files, err := c.Collect(c.rootDir)
	if err != nil {
		return err
	}
	_, err = c.ScanFiles(ctx, files)
	return err
}

// ScanFiles reads and parses paths concurrently, at most
// config.Workspace.Jobs at a time. Files that cannot be read are skipped and
// their errors joined into the returned error. The result holds the parsed
// files in the order of paths, nil where reading failed.
func (c *Codebase) ScanFiles(ctx context.Context, paths []string) ([]*FileInfo, error) {
	jobs := c.cfg.Workspace.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*FileInfo, len(paths))
	readErrs := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			content, err := os.ReadFile(path)
			if err != nil {
				readErrs[i] = err
				return nil
			}
			results[i] = c.UpdateFile(path, string(content))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	log.Debugf("scanned %d files", len(paths))
	return results, errors.Join(readErrs...)
}

func (c *Codebase) ScanFile(path string) (*FileInfo, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return c.UpdateFile(path, string(content)), nil
}

// UpdateFile parses content and stores it under path, replacing any earlier
// version.
func (c *Codebase) UpdateFile(path, content string) *FileInfo {
	f := &FileInfo{
		Path:     path,
		Content:  content,
		Document: c.parser.Parse(content),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = f
	return f
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Paths returns the stored paths, sorted.
func (c *Codebase) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	paths := make([]string, 0, len(c.files))
	for path := range c.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// DiagnosticsOf returns the parse diagnostics of the file at path.
func (c *Codebase) DiagnosticsOf(path string) []parser.Diagnostic {
	f := c.GetFile(path)
	if f == nil {
		return nil
	}
	return f.Document.Diagnostics()
}
