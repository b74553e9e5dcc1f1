package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata describes one ingested posting file
type Metadata struct {
	Source    string `json:"source"`    // file path the posting was loaded from
	Format    string `json:"format"`    // json, text, or html
	Timestamp string `json:"timestamp"` // RFC3339
	Hash      string `json:"hash"`      // SHA256 hex digest of the cleaned content
	JobCount  int    `json:"job_count"`
}

// NewMetadata stamps the current time and the content digest
func NewMetadata(source, format, content string, jobCount int) *Metadata {
	digest := sha256.Sum256([]byte(content))
	return &Metadata{
		Source:    source,
		Format:    format,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      hex.EncodeToString(digest[:]),
		JobCount:  jobCount,
	}
}

// ToJSON marshals the metadata as indented JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return data, nil
}
