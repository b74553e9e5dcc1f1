package inventory

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Snapshot digests the accepted files under basePath (path, size, mtime) so
// the orchestrator can detect filesystem changes and invalidate its cached
// inventory. Skipped files do not contribute: a change that discovery would
// not see does not force a rescan.
func (s *Scanner) Snapshot(basePath string) (string, error) {
	var entries []string

	err := filepath.WalkDir(basePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !s.cfg.SupportsFormat(ext) {
			return nil
		}
		info, err := d.Info()
		if err != nil || info.Size() >= s.cfg.MaxFileSizeBytes() {
			return nil
		}

		entries = append(entries, snapshotEntry(path, info.Size(), info.ModTime()))
		return nil
	})
	if err != nil {
		return "", &DiscoveryError{BasePath: basePath, Message: "snapshot walk failed", Cause: err}
	}

	return digestEntries(entries), nil
}

// snapshotEntry encodes one accepted file for the snapshot digest
func snapshotEntry(path string, size int64, mtime time.Time) string {
	return fmt.Sprintf("%s|%d|%d", path, size, mtime.UnixNano())
}

// digestEntries hashes the sorted entry list into the snapshot digest
func digestEntries(entries []string) string {
	sort.Strings(entries)
	sum := sha256.Sum256([]byte(strings.Join(entries, "\n")))
	return hex.EncodeToString(sum[:])
}
