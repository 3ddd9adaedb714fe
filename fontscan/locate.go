package fontscan

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gogpu/bingo/text"
)

// HostDiscovery is a Provider that searches the host's font directories.
//
// The search runs in two tiers. First, candidate files whose base name
// case-insensitively matches one of the preferred family names are
// loaded directly, in list order. Second, every remaining candidate is
// parsed and scored by printable-ASCII glyph coverage; the best score
// wins, ties broken by enumeration order.
//
// The zero value discovers with the platform's standard directories,
// PreferredFamilies, and no logging.
type HostDiscovery struct {
	// Dirs overrides the searched directories. Nil means
	// SearchDirs(runtime.GOOS). Tests inject fake directory lists here.
	Dirs []string

	// Preferred overrides the preferred family names.
	// Nil means PreferredFamilies.
	Preferred []string

	// Logger receives discovery diagnostics. Nil means silent.
	Logger *slog.Logger
}

// Locate implements Provider.
// Discovery is a sequential filesystem traversal: it can be slow on
// large font trees and defines no timeout.
func (d HostDiscovery) Locate() (*text.FontSource, error) {
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	dirs := d.Dirs
	if dirs == nil {
		dirs = SearchDirs(runtime.GOOS)
	}

	files := collectFontFiles(dirs)
	logger.Debug("font discovery scan complete",
		"dirs", len(dirs),
		"candidates", len(files))

	if len(files) == 0 {
		return nil, ErrFontNotFound
	}

	preferred := d.Preferred
	if preferred == nil {
		preferred = PreferredFamilies
	}

	// Fast path: well-known family names, first match wins in list order.
	for _, name := range preferred {
		for _, path := range files {
			if !strings.EqualFold(fileStem(path), name) {
				continue
			}
			src, err := text.NewFontSourceFromFile(path)
			if err != nil {
				logger.Warn("preferred font unreadable", "path", path, "error", err)
				continue
			}
			logger.Info("font selected by name", "path", path, "family", name)
			return src, nil
		}
	}

	// Fallback: score every parseable candidate by printable-ASCII
	// coverage. Strictly-greater comparison keeps the first candidate
	// on ties.
	var (
		best      *text.FontSource
		bestPath  string
		bestScore = -1
	)
	for _, path := range files {
		src, err := text.NewFontSourceFromFile(path)
		if err != nil {
			logger.Debug("candidate rejected", "path", path, "error", err)
			continue
		}
		score := coverageScore(src.Parsed())
		logger.Debug("candidate scored", "path", path, "coverage", score)
		if score > bestScore {
			best, bestPath, bestScore = src, path, score
		}
	}

	if best == nil {
		return nil, ErrFontNotFound
	}

	logger.Info("font selected by coverage",
		"path", bestPath,
		"coverage", bestScore)
	return best, nil
}

// collectFontFiles recursively gathers every font file under dirs.
// Missing directories are skipped; walk errors abandon the offending
// subtree but not the scan.
func collectFontFiles(dirs []string) []string {
	var files []string
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		_ = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return fs.SkipDir
			}
			if entry.IsDir() {
				return nil
			}
			if fontExtensions[strings.ToLower(filepath.Ext(path))] {
				files = append(files, path)
			}
			return nil
		})
	}
	return files
}

// fileStem returns the base name of path without its extension.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// coverageScore counts the printable ASCII code points (0x20–0x7E) that
// resolve to a non-notdef glyph.
func coverageScore(parsed text.ParsedFont) int {
	score := 0
	for r := rune(0x20); r <= 0x7E; r++ {
		if parsed.GlyphIndex(r) != 0 {
			score++
		}
	}
	return score
}
