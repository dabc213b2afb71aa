package site

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// copyAssets copies files from the configured assets directory into the
// site output, honoring the include/exclude glob patterns.
func (g *Generator) copyAssets() error {
	dir := g.Cfg.Assets.Dir
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !matchesInclude(rel, g.Cfg.Assets.Include) || matchesExclude(rel, g.Cfg.Assets.Exclude) {
			return nil
		}

		return copyFile(path, filepath.Join(g.OutputDir, filepath.Base(dir), filepath.FromSlash(rel)))
	})
}

// matchesInclude returns true if relPath matches any include pattern.
// Empty patterns include everything.
func matchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// matchesExclude returns true if relPath matches any exclude pattern.
// Empty patterns exclude nothing.
func matchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny checks relPath against glob patterns, using doublestar for **
// support and falling back to filepath.Match.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}
	return false
}
