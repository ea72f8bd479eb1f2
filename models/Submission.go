package models

// Submission represents one committed solution file parsed from the repository tree
type Submission struct {
	ID       string  `json:"id"`       // memberId/week/name
	Member   string  `json:"member"`   // owning member id
	Week     string  `json:"week"`     // period token, YY-MM-wN
	Name     string  `json:"name"`     // file stem, e.g. "boj-2346-v2"
	BaseName string  `json:"baseName"` // name with the -vN suffix stripped
	Version  *int    `json:"version,omitempty"`
	Source   string  `json:"source"` // swea | boj | etc
	Path     string  `json:"path"`
	HasNote  bool    `json:"hasNote"`
	NotePath *string `json:"notePath,omitempty"`
}

// VersionOrLegacy returns the version number, treating an unversioned legacy
// file as version 1
func (s Submission) VersionOrLegacy() int {
	if s.Version == nil {
		return 1
	}
	return *s.Version
}
