package inventory

import "fmt"

// DiscoveryError represents a failure to scan the resume folder tree.
// Unlike per-file problems (which are skipped), this aborts discovery.
type DiscoveryError struct {
	BasePath string
	Message  string
	Cause    error
}

func (e *DiscoveryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("discovery failed for %s: %s: %v", e.BasePath, e.Message, e.Cause)
	}
	return fmt.Sprintf("discovery failed for %s: %s", e.BasePath, e.Message)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Cause
}
