package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-intel/internal/config"
	"github.com/jonathan/resume-intel/internal/types"
)

func writeResume(t *testing.T, dir, name, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScanResumeFolders_MissingBasePath(t *testing.T) {
	s := NewScanner(config.DefaultConfig(), nil)

	_, err := s.ScanResumeFolders(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)

	var derr *DiscoveryError
	require.ErrorAs(t, err, &derr)
	assert.Contains(t, derr.Error(), "does not exist")
}

func TestScanResumeFolders_ScenarioA(t *testing.T) {
	// base_path with folders {master (1 file), AI (2 files), Sales (1 file)}
	base := t.TempDir()
	writeResume(t, filepath.Join(base, "master"), "full.txt", "python java sales marketing design 12 years of experience")
	writeResume(t, filepath.Join(base, "AI"), "ml_resume.txt", "python tensorflow machine learning 5 years")
	writeResume(t, filepath.Join(base, "AI"), "data_resume.txt", "python sql spark data engineering 4 years")
	writeResume(t, filepath.Join(base, "Sales"), "sales_resume.txt", "sales revenue crm negotiation 6 years")

	s := NewScanner(config.DefaultConfig(), nil)
	inv, err := s.ScanResumeFolders(base)
	require.NoError(t, err)

	assert.Equal(t, 4, inv.TotalResumes())
	require.NotNil(t, inv.MasterResume)
	assert.Equal(t, types.ResumeTypeMaster, inv.MasterResume.ResumeType)
	assert.Len(t, inv.CandidateResumes, 3)

	// Invariant: the master is never in the candidate pool
	for _, c := range inv.CandidateResumes {
		assert.NotEqual(t, inv.MasterResume.FilePath, c.FilePath)
		assert.Equal(t, types.ResumeTypeCandidate, c.ResumeType)
	}
}

func TestScanResumeFolders_MultipleMasters_LargestWins(t *testing.T) {
	base := t.TempDir()
	writeResume(t, filepath.Join(base, "master"), "small.txt", "python")
	writeResume(t, filepath.Join(base, "complete"), "big.txt", "python java sql aws docker kubernetes 10 years of experience in everything")

	s := NewScanner(config.DefaultConfig(), nil)
	inv, err := s.ScanResumeFolders(base)
	require.NoError(t, err)

	require.NotNil(t, inv.MasterResume)
	assert.Equal(t, "big.txt", inv.MasterResume.Filename)

	// The losing master is reinstated as a candidate
	require.Len(t, inv.CandidateResumes, 1)
	assert.Equal(t, "small.txt", inv.CandidateResumes[0].Filename)
	assert.Equal(t, types.ResumeTypeCandidate, inv.CandidateResumes[0].ResumeType)
}

func TestScanResumeFolders_SkipsUnsupportedAndOversized(t *testing.T) {
	base := t.TempDir()
	writeResume(t, filepath.Join(base, "AI"), "resume.txt", "python tensorflow")
	writeResume(t, filepath.Join(base, "AI"), "photo.png", "not a resume")

	cfg := config.DefaultConfig()
	cfg.MaxFileSizeMB = 1
	oversized := make([]byte, 1024*1024)
	writeResume(t, filepath.Join(base, "AI"), "huge.txt", string(oversized))

	s := NewScanner(cfg, nil)
	inv, err := s.ScanResumeFolders(base)
	require.NoError(t, err)

	require.Len(t, inv.CandidateResumes, 1)
	assert.Equal(t, "resume.txt", inv.CandidateResumes[0].Filename)
}

func TestScanResumeFolders_BinaryFormatUsesFilenameTokens(t *testing.T) {
	base := t.TempDir()
	writeResume(t, filepath.Join(base, "Tech"), "python_backend_engineer.pdf", "%PDF binary junk")

	s := NewScanner(config.DefaultConfig(), nil)
	inv, err := s.ScanResumeFolders(base)
	require.NoError(t, err)

	require.Len(t, inv.CandidateResumes, 1)
	assert.Contains(t, inv.CandidateResumes[0].Skills, "python")
	assert.Contains(t, inv.CandidateResumes[0].Skills, "backend")
}

func TestScanWithSnapshot_DigestMatchesObservedTree(t *testing.T) {
	base := t.TempDir()
	writeResume(t, filepath.Join(base, "AI"), "resume.txt", "python tensorflow")

	s := NewScanner(config.DefaultConfig(), nil)

	inv, scanned, err := s.ScanWithSnapshot(base)
	require.NoError(t, err)
	require.Len(t, inv.CandidateResumes, 1)

	// On an unchanged tree the scan's digest equals a standalone probe
	probe, err := s.Snapshot(base)
	require.NoError(t, err)
	assert.Equal(t, probe, scanned)

	// A new accepted file yields a different digest from the next scan
	writeResume(t, filepath.Join(base, "AI"), "second.txt", "java")
	_, rescanned, err := s.ScanWithSnapshot(base)
	require.NoError(t, err)
	assert.NotEqual(t, scanned, rescanned)
}

func TestSnapshot_ChangesWithAcceptedFiles(t *testing.T) {
	base := t.TempDir()
	writeResume(t, filepath.Join(base, "AI"), "resume.txt", "python")

	s := NewScanner(config.DefaultConfig(), nil)
	first, err := s.Snapshot(base)
	require.NoError(t, err)

	second, err := s.Snapshot(base)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// An unsupported file does not change the snapshot
	writeResume(t, filepath.Join(base, "AI"), "notes.md", "irrelevant")
	third, err := s.Snapshot(base)
	require.NoError(t, err)
	assert.Equal(t, first, third)

	// A new supported file does
	writeResume(t, filepath.Join(base, "AI"), "second.txt", "java")
	fourth, err := s.Snapshot(base)
	require.NoError(t, err)
	assert.NotEqual(t, first, fourth)
}
