// Package inventory discovers resume files under a base path and classifies
// them into a single master resume plus a candidate pool, tagging each
// candidate with a professional domain.
package inventory

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-intel/internal/config"
	"github.com/jonathan/resume-intel/internal/types"
)

// Scanner performs resume folder discovery. Stateless: one instance may be
// reused across scans.
type Scanner struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewScanner creates a scanner with the injected configuration
func NewScanner(cfg *config.Config, log *zap.Logger) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{cfg: cfg, logger: log}
}

// ScanResumeFolders recursively enumerates basePath and builds the inventory.
// Files with unsupported extensions or exceeding the size limit are skipped.
// A missing base path is a hard discovery error.
func (s *Scanner) ScanResumeFolders(basePath string) (*types.ResumeInventory, error) {
	inv, _, err := s.ScanWithSnapshot(basePath)
	return inv, err
}

// ScanWithSnapshot scans like ScanResumeFolders and also returns the snapshot
// digest of the files this walk observed, so a caller caching the inventory
// keys it by the exact tree the scan saw rather than a separate walk.
func (s *Scanner) ScanWithSnapshot(basePath string) (*types.ResumeInventory, string, error) {
	info, err := os.Stat(basePath)
	if err != nil {
		return nil, "", &DiscoveryError{BasePath: basePath, Message: "base path does not exist", Cause: err}
	}
	if !info.IsDir() {
		return nil, "", &DiscoveryError{BasePath: basePath, Message: "base path is not a directory"}
	}

	var masters []types.ResumeMetadata
	var candidates []types.ResumeMetadata
	var entries []string

	walkErr := filepath.WalkDir(basePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: skip it rather than aborting the scan
			s.logger.Warn("skipping unreadable path", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		meta, ok := s.inspectFile(basePath, path, d)
		if !ok {
			return nil
		}
		entries = append(entries, snapshotEntry(meta.FilePath, meta.FileSize, meta.LastModified))

		if meta.ResumeType == types.ResumeTypeMaster {
			masters = append(masters, meta)
		} else {
			candidates = append(candidates, meta)
		}
		return nil
	})
	if walkErr != nil {
		return nil, "", &DiscoveryError{BasePath: basePath, Message: "folder walk failed", Cause: walkErr}
	}

	inv := &types.ResumeInventory{
		BasePath:         basePath,
		CandidateResumes: candidates,
	}

	// More than one master-flagged file: the largest wins; the losers are
	// reinstated as candidates so no resume is lost from the pool.
	if len(masters) > 0 {
		winner := 0
		for i := range masters {
			if masters[i].FileSize > masters[winner].FileSize {
				winner = i
			}
		}
		master := masters[winner]
		inv.MasterResume = &master

		for i := range masters {
			if i == winner {
				continue
			}
			demoted := masters[i]
			demoted.ResumeType = types.ResumeTypeCandidate
			inv.CandidateResumes = append(inv.CandidateResumes, demoted)
			s.logger.Info("demoting extra master resume to candidate",
				zap.String("file", demoted.Filename))
		}
	}

	s.logger.Debug("resume scan complete",
		zap.String("base_path", basePath),
		zap.Int("total", inv.TotalResumes()),
		zap.Bool("has_master", inv.MasterResume != nil))

	return inv, digestEntries(entries), nil
}

// inspectFile filters one file against the supported-format and size rules
// and builds its metadata. Returns false when the file is skipped.
func (s *Scanner) inspectFile(basePath, path string, d fs.DirEntry) (types.ResumeMetadata, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if !s.cfg.SupportsFormat(ext) {
		return types.ResumeMetadata{}, false
	}

	info, err := d.Info()
	if err != nil {
		s.logger.Warn("skipping unreadable file", zap.String("path", path), zap.Error(err))
		return types.ResumeMetadata{}, false
	}
	if info.Size() >= s.cfg.MaxFileSizeBytes() {
		s.logger.Debug("skipping oversized file",
			zap.String("path", path), zap.Int64("size", info.Size()))
		return types.ResumeMetadata{}, false
	}

	content := s.readContent(path, ext)
	skills := ExtractSkills(content)
	years := ExtractExperienceYears(content)

	resumeType := types.ResumeTypeCandidate
	if isMasterPath(basePath, path, s.cfg.MasterFolderNames) {
		resumeType = types.ResumeTypeMaster
	}

	meta := types.ResumeMetadata{
		FilePath:        path,
		Filename:        filepath.Base(path),
		ResumeType:      resumeType,
		Skills:          skills,
		ExperienceYears: years,
		LastModified:    info.ModTime(),
		FileSize:        info.Size(),
	}
	meta.Domain = ClassifyDomain(relativeFolders(basePath, path), skills, s.cfg.DomainClassificationConfidence)

	return meta, true
}

// readContent returns the text used for skill and experience extraction:
// the file body for plain text formats, the filename tokens otherwise
// (binary parsing is out of scope, so the name stands in for the content).
func (s *Scanner) readContent(path, ext string) string {
	if ext == ".txt" {
		data, err := os.ReadFile(path)
		if err == nil {
			return strings.ToLower(string(data))
		}
		s.logger.Warn("failed to read text resume, using filename tokens",
			zap.String("path", path), zap.Error(err))
	}

	name := strings.TrimSuffix(filepath.Base(path), ext)
	return strings.ToLower(strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(name))
}

// isMasterPath reports whether any ancestor directory of path (under
// basePath, excluding the filename itself) matches a master folder name,
// case-insensitively.
func isMasterPath(basePath, path string, masterNames []string) bool {
	for _, folder := range relativeFolders(basePath, path) {
		lower := strings.ToLower(folder)
		for _, name := range masterNames {
			if strings.Contains(lower, strings.ToLower(name)) {
				return true
			}
		}
	}
	return false
}

// relativeFolders returns the directory names between basePath and the file
func relativeFolders(basePath, path string) []string {
	rel, err := filepath.Rel(basePath, filepath.Dir(path))
	if err != nil || rel == "." {
		return nil
	}
	return strings.Split(rel, string(filepath.Separator))
}
