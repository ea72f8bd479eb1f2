package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"api/cache"
	"api/config"
	"api/metrics"

	log "github.com/sirupsen/logrus"
)

const (
	apiBase   = "https://api.github.com"
	userAgent = "Sootudy-API"

	acceptJSON = "application/vnd.github.v3+json"
	acceptRaw  = "application/vnd.github.v3.raw"

	// Commit history lookback window for activity aggregation
	HistoryLookback = 84 * 24 * time.Hour
	historyPerPage  = 100
	historyMaxPages = 10
)

// Client talks to the repository contents API. Reads go through the cache
// capability; mutations never do.
type Client struct {
	owner  string
	repo   string
	branch string
	token  string
	http   *http.Client
	cache  cache.Store
}

// NewClient creates a content-store client for one repository. The token may
// be empty for read-only use against a public repository.
func NewClient(owner, repo, branch, token string, store cache.Store) *Client {
	return &Client{
		owner:  owner,
		repo:   repo,
		branch: branch,
		token:  token,
		http:   &http.Client{Timeout: 15 * time.Second},
		cache:  store,
	}
}

// BaseURL is overridable for tests
var BaseURL = apiBase

// Default is the process-wide client, set up once at startup
var Default *Client

// Init wires the default client from config
func Init(store cache.Store) {
	Default = NewClient(config.GithubOwner, config.GithubRepo, config.GithubBranch, config.GithubToken, store)
}

// Cache exposes the read-cache capability so gateway callers can invalidate
// affected keys right after a successful mutation
func (c *Client) Cache() cache.Store {
	return c.cache
}

// Tree fetches the full recursive file listing of the repository
func (c *Client) Tree(ctx context.Context) ([]TreeItem, error) {
	if raw, ok := c.cache.Get(cache.KeyTree); ok {
		var items []TreeItem
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
	}

	path := fmt.Sprintf("/repos/%s/%s/git/trees/%s?recursive=1", c.owner, c.repo, c.branch)
	body, err := c.do(ctx, http.MethodGet, path, acceptJSON, nil, "tree")
	if err != nil {
		return nil, err
	}

	var resp treeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding tree response: %w", err)
	}
	if resp.Truncated {
		log.Warn("repository tree listing was truncated")
	}

	if raw, err := json.Marshal(resp.Tree); err == nil {
		c.cache.Set(cache.KeyTree, raw, cache.DefaultTTL)
	}
	return resp.Tree, nil
}

// FileContent fetches a file's raw content by path
func (c *Client) FileContent(ctx context.Context, filePath string) (string, error) {
	key := cache.KeyFile(filePath)
	if raw, ok := c.cache.Get(key); ok {
		return string(raw), nil
	}

	path := fmt.Sprintf("/repos/%s/%s/contents/%s", c.owner, c.repo, escapePath(filePath))
	body, err := c.do(ctx, http.MethodGet, path, acceptRaw, nil, "get_file")
	if err != nil {
		return "", err
	}

	c.cache.Set(key, body, cache.DefaultTTL)
	return string(body), nil
}

// FileMeta fetches a file's metadata, including the current sha used as the
// precondition for update and delete calls. Never served from cache.
func (c *Client) FileMeta(ctx context.Context, filePath string) (*ContentMeta, error) {
	path := fmt.Sprintf("/repos/%s/%s/contents/%s", c.owner, c.repo, escapePath(filePath))
	body, err := c.do(ctx, http.MethodGet, path, acceptJSON, nil, "get_meta")
	if err != nil {
		return nil, err
	}

	var meta ContentMeta
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, fmt.Errorf("decoding content metadata: %w", err)
	}
	return &meta, nil
}

// DecodedContent returns the metadata's base64 payload as text
func (m *ContentMeta) DecodedContent() (string, error) {
	cleaned := strings.ReplaceAll(m.Content, "\n", "")
	data, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", fmt.Errorf("decoding file content: %w", err)
	}
	return string(data), nil
}

// ListDirectory fetches the file entries of a directory. A missing directory
// is not an error: it returns an empty listing, matching the allocator's view
// that "no directory yet" means "no existing versions".
func (c *Client) ListDirectory(ctx context.Context, dir string) ([]DirEntry, error) {
	path := fmt.Sprintf("/repos/%s/%s/contents/%s", c.owner, c.repo, escapePath(dir))
	body, err := c.do(ctx, http.MethodGet, path, acceptJSON, nil, "list_dir")
	if err != nil {
		if NotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []DirEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decoding directory listing: %w", err)
	}
	return entries, nil
}

// PutFile creates or updates a file. sha must be empty on create and the
// current content sha on update; a stale sha makes the store reject the write.
func (c *Client) PutFile(ctx context.Context, filePath, message string, content []byte, sha string, author CommitAuthor) error {
	req := putRequest{
		Message:   message,
		Content:   base64.StdEncoding.EncodeToString(content),
		SHA:       sha,
		Author:    author,
		Committer: author,
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/repos/%s/%s/contents/%s", c.owner, c.repo, escapePath(filePath))
	_, err = c.do(ctx, http.MethodPut, path, acceptJSON, payload, "put_file")
	return err
}

// DeleteFile removes a file, using sha as the precondition
func (c *Client) DeleteFile(ctx context.Context, filePath, message, sha string, author CommitAuthor) error {
	req := deleteRequest{
		Message:   message,
		SHA:       sha,
		Author:    author,
		Committer: author,
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/repos/%s/%s/contents/%s", c.owner, c.repo, escapePath(filePath))
	_, err = c.do(ctx, http.MethodDelete, path, acceptJSON, payload, "delete_file")
	return err
}

// Commits fetches the commit history within the lookback window, following
// pagination up to a fixed page bound
func (c *Client) Commits(ctx context.Context, since time.Time) ([]Commit, error) {
	var all []Commit
	for page := 1; page <= historyMaxPages; page++ {
		path := fmt.Sprintf("/repos/%s/%s/commits?per_page=%d&page=%d&since=%s",
			c.owner, c.repo, historyPerPage, page, since.UTC().Format(time.RFC3339))
		body, err := c.do(ctx, http.MethodGet, path, acceptJSON, nil, "commits")
		if err != nil {
			return nil, err
		}

		var commits []Commit
		if err := json.Unmarshal(body, &commits); err != nil {
			return nil, fmt.Errorf("decoding commit history: %w", err)
		}
		all = append(all, commits...)
		if len(commits) < historyPerPage {
			break
		}
	}
	return all, nil
}

func (c *Client) do(ctx context.Context, method, path, accept string, body []byte, operation string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordUpstreamOperation(operation, "network_error", start)
		return nil, fmt.Errorf("content store request failed: %w", err)
	}
	defer resp.Body.Close()
	metrics.RecordUpstreamOperation(operation, fmt.Sprintf("%d", resp.StatusCode), start)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp errorResponse
		_ = json.Unmarshal(data, &errResp)
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: errResp.Message}
	}
	return data, nil
}

// escapePath escapes each path segment while keeping the separators
func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
