package wordreel

import "fmt"

// MountError reports that a required mount node could not be found when a
// sequencer started. It is not retried.
type MountError struct {
	Selector string
	Role     string // "word container" or "project container"
}

func (e *MountError) Error() string {
	return fmt.Sprintf("wordreel: %s %q not found", e.Role, e.Selector)
}

// ImageLoadError reports that a project image could not be resolved.
type ImageLoadError struct {
	URL string
	Err error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("wordreel: load image %q: %v", e.URL, e.Err)
}

func (e *ImageLoadError) Unwrap() error {
	return e.Err
}

// CatalogError reports an invalid word catalog.
type CatalogError struct {
	Index  int // word index, -1 for catalog-wide problems
	Reason string
}

func (e *CatalogError) Error() string {
	if e.Index < 0 {
		return "wordreel: catalog: " + e.Reason
	}
	return fmt.Sprintf("wordreel: catalog word %d: %s", e.Index, e.Reason)
}
