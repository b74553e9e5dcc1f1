package inventory

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-intel/internal/types"
)

// ResumeText returns the text used for content analysis of a resume: the
// file body for plain text formats, the filename tokens for binary formats
// (binary parsing is out of scope, so the name stands in for the content).
func ResumeText(meta *types.ResumeMetadata) string {
	ext := strings.ToLower(filepath.Ext(meta.FilePath))
	if ext == ".txt" {
		data, err := os.ReadFile(meta.FilePath)
		if err == nil {
			return string(data)
		}
	}

	name := strings.TrimSuffix(meta.Filename, ext)
	return strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(name)
}
