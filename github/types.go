package github

import "fmt"

// TreeItem is one entry of a recursive tree listing
type TreeItem struct {
	Path string `json:"path"`
	Mode string `json:"mode"`
	Type string `json:"type"` // "blob" or "tree"
	SHA  string `json:"sha"`
	Size *int   `json:"size,omitempty"`
	URL  string `json:"url"`
}

type treeResponse struct {
	SHA       string     `json:"sha"`
	URL       string     `json:"url"`
	Tree      []TreeItem `json:"tree"`
	Truncated bool       `json:"truncated"`
}

// ContentMeta is the metadata form of a contents response, carried when a
// mutation needs the current sha as its optimistic-concurrency precondition
type ContentMeta struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	SHA     string `json:"sha"`
	Type    string `json:"type"`
	Content string `json:"content"` // base64
}

// DirEntry is one file of a directory contents listing
type DirEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	SHA  string `json:"sha"`
	Type string `json:"type"`
}

// CommitAuthor is the commit identity attached to gateway mutations
type CommitAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Commit is one entry of the commit history listing. Only the fields the
// activity aggregator reads are decoded.
type Commit struct {
	SHA    string `json:"sha"`
	Commit struct {
		Author struct {
			Name  string `json:"name"`
			Email string `json:"email"`
			Date  string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
	Author *struct {
		Login string `json:"login"`
	} `json:"author"`
}

type putRequest struct {
	Message   string       `json:"message"`
	Content   string       `json:"content"` // base64
	SHA       string       `json:"sha,omitempty"`
	Author    CommitAuthor `json:"author"`
	Committer CommitAuthor `json:"committer"`
}

type deleteRequest struct {
	Message   string       `json:"message"`
	SHA       string       `json:"sha"`
	Author    CommitAuthor `json:"author"`
	Committer CommitAuthor `json:"committer"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// UpstreamError reports a non-2xx response from the content store
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("content store error: %d %s", e.StatusCode, e.Message)
}

// NotFound reports whether err is an upstream 404
func NotFound(err error) bool {
	if ue, ok := err.(*UpstreamError); ok {
		return ue.StatusCode == 404
	}
	return false
}
