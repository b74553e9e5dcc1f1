package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-intel/internal/schemas"
	"github.com/jonathan/resume-intel/internal/types"
)

// ErrUnsupportedFormat is returned for file extensions the loader cannot read
var ErrUnsupportedFormat = fmt.Errorf("unsupported posting format")

// LoadJobPostings reads one posting file and returns the jobs it contains.
// JSON files may hold a single posting object or an array and are validated
// against the job posting schema first. Text and HTML files yield one posting
// whose description is the cleaned body text.
func LoadJobPostings(path string) ([]types.JobPosting, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read posting file: %w", err)
	}

	var jobs []types.JobPosting
	var format string

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		format = "json"
		jobs, err = parseJSONPostings(string(data))
	case ".txt", ".md":
		format = "text"
		jobs, err = parseTextPosting(path, string(data))
	case ".html", ".htm":
		format = "html"
		jobs, err = parseHTMLPosting(path, string(data))
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, nil, err
	}

	for i := range jobs {
		if jobs[i].ID == "" {
			jobs[i].ID = uuid.NewString()
		}
	}

	return jobs, NewMetadata(path, format, string(data), len(jobs)), nil
}

func parseJSONPostings(content string) ([]types.JobPosting, error) {
	trimmed := strings.TrimSpace(content)

	if strings.HasPrefix(trimmed, "[") {
		if err := schemas.ValidateJobPostingList(trimmed); err != nil {
			return nil, fmt.Errorf("posting list rejected: %w", err)
		}
		var jobs []types.JobPosting
		if err := json.Unmarshal([]byte(trimmed), &jobs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal postings: %w", err)
		}
		return jobs, nil
	}

	if err := schemas.ValidateJobPosting(trimmed); err != nil {
		return nil, fmt.Errorf("posting rejected: %w", err)
	}
	var job types.JobPosting
	if err := json.Unmarshal([]byte(trimmed), &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal posting: %w", err)
	}
	return []types.JobPosting{job}, nil
}

func parseTextPosting(path, content string) ([]types.JobPosting, error) {
	cleaned := CleanText(content)
	if cleaned == "" {
		return nil, fmt.Errorf("posting file %s is empty", path)
	}

	return []types.JobPosting{{
		Title:       firstLine(cleaned),
		Description: cleaned,
	}}, nil
}

func parseHTMLPosting(path, content string) ([]types.JobPosting, error) {
	text, err := ExtractHTMLText(content)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("no text content found in %s", path)
	}

	title := ExtractHTMLTitle(content)
	if title == "" {
		title = firstLine(text)
	}

	return []types.JobPosting{{
		Title:       title,
		Description: text,
	}}, nil
}

// firstLine returns the first non-empty line, trimmed of heading markers
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "# "))
		if line != "" {
			return line
		}
	}
	return ""
}
