package engine

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/phyten/todolint/internal/detect"
	"github.com/phyten/todolint/internal/rule"
	"github.com/phyten/todolint/internal/textutil"
)

// Directories that almost never contain first-party comments worth
// flagging. Applied when ExcludeTypical is set; .git is always skipped.
var typicalExcludeDirs = map[string]struct{}{
	"node_modules": {},
	"vendor":       {},
	"dist":         {},
	"build":        {},
	"target":       {},
	".idea":        {},
	".vscode":      {},
	".cache":       {},
}

type scanJob struct {
	path string
}

type scanResult struct {
	items []Item
	errs  []ItemError
}

// Run walks the tree under opts.Dir, extracts comments from every
// recognized source file and classifies them. Matcher compilation failures
// and an invalid location are configuration errors and abort the run before
// any file is read; per-file failures are collected as ItemErrors instead.
func Run(ctx context.Context, opts Options) (*Result, error) {
	started := time.Now()

	loc, err := rule.ParseLocation(opts.Location)
	if err != nil {
		return nil, err
	}
	matchers, err := rule.BuildMatchers(opts.Terms, loc)
	if err != nil {
		return nil, err
	}
	tracker, source := resolveTracker(opts)
	cls := rule.NewClassifier(matchers, tracker)

	files, err := listFiles(opts)
	if err != nil {
		return nil, err
	}

	workers := opts.Jobs
	if workers < 1 {
		workers = 1
	}
	if workers > 64 {
		workers = 64
	}

	jobs := make(chan scanJob)
	results := make(chan scanResult)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for job := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				items, errs := scanFile(job.path, opts, cls)
				results <- scanResult{items: items, errs: errs}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case jobs <- scanJob{path: path}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var items []Item
	var errs []ItemError
	for res := range results {
		items = append(items, res.items...)
		errs = append(errs, res.errs...)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].File == items[j].File {
			if items[i].Line == items[j].Line {
				return items[i].Col < items[j].Col
			}
			return items[i].Line < items[j].Line
		}
		return items[i].File < items[j].File
	})
	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].File == errs[j].File {
			return errs[i].Stage < errs[j].Stage
		}
		return errs[i].File < errs[j].File
	})

	return &Result{
		Items:         items,
		Total:         len(items),
		Tracker:       tracker,
		TrackerSource: source,
		ElapsedMS:     time.Since(started).Milliseconds(),
		Errors:        errs,
		ErrorCount:    len(errs),
	}, nil
}

// resolveTracker applies the source priority for the exemption reference:
// explicit configuration first, then the injected manifest lookup, then
// none at all.
func resolveTracker(opts Options) (url, source string) {
	if u := strings.TrimSpace(opts.URL); u != "" {
		return u, "config"
	}
	if opts.TrackerLookup != nil {
		if u, ok := opts.TrackerLookup(opts.Dir); ok {
			return u, "manifest"
		}
	}
	return "", ""
}

func listFiles(opts Options) ([]string, error) {
	root := strings.TrimSpace(opts.Dir)
	if root == "" {
		root = "."
	}
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if p == root {
				return walkErr
			}
			return nil
		}
		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if d.Name() == ".git" {
				return fs.SkipDir
			}
			if opts.ExcludeTypical {
				if _, ok := typicalExcludeDirs[d.Name()]; ok {
					return fs.SkipDir
				}
			}
			if matchesAnyGlob(rel, d.Name(), opts.Excludes) {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if len(opts.Paths) > 0 && !underAny(rel, opts.Paths) {
			return nil
		}
		if matchesAnyGlob(rel, d.Name(), opts.Excludes) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}

func underAny(rel string, prefixes []string) bool {
	for _, raw := range prefixes {
		p := strings.Trim(strings.TrimSpace(filepath.ToSlash(raw)), "/")
		if p == "" || p == "." {
			return true
		}
		if rel == p || strings.HasPrefix(rel, p+"/") {
			return true
		}
	}
	return false
}

func matchesAnyGlob(rel, base string, patterns []string) bool {
	for _, raw := range patterns {
		pattern := strings.TrimSpace(filepath.ToSlash(raw))
		if pattern == "" {
			continue
		}
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

func scanFile(rel string, opts Options, cls *rule.Classifier) ([]Item, []ItemError) {
	root := strings.TrimSpace(opts.Dir)
	if root == "" {
		root = "."
	}
	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		return nil, []ItemError{{File: rel, Stage: "read", Message: err.Error()}}
	}
	// binary and non-text content never carries comments we can place
	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		return nil, nil
	}
	if opts.MaxFileBytes > 0 && len(data) > opts.MaxFileBytes {
		return nil, nil
	}

	info := detect.FromPathAndContent(rel, data)
	if !detect.MatchesLang(info, opts.DetectLangs) {
		return nil, nil
	}
	lang := detect.NormalizeLangName(info.Name)
	style, ok := styleForLanguage(lang)
	if !ok {
		return nil, nil
	}

	var items []Item
	for _, comment := range extractComments(data, style) {
		if !comment.Kind.IsComment() {
			continue
		}
		finding, hit := cls.Classify(comment)
		if !hit {
			continue
		}
		display := strings.TrimSpace(comment.Text)
		if opts.TruncComment > 0 {
			display = textutil.Truncate(display, opts.TruncComment, "...")
		}
		items = append(items, Item{
			Term:    strings.ToUpper(finding.Term),
			Kind:    string(comment.Kind),
			Lang:    lang,
			File:    rel,
			Line:    comment.Span.StartLine,
			Col:     comment.Span.StartCol,
			Span:    comment.Span,
			Message: finding.Message,
			Comment: display,
		})
	}
	return items, nil
}
