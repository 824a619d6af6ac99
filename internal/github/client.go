package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var httpClient = &http.Client{Timeout: 8 * time.Second}

const acceptHeader = "application/vnd.github.v3+json"

// Config holds the connection settings for the contents API.
type Config struct {
	BaseURL   string
	Token     string
	UserAgent string
}

// Client reads and writes repository files through the GitHub contents API.
type Client struct {
	config Config
}

// NewClient creates a contents API client.
func NewClient(cfg Config) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{config: cfg}
}

// File is one fetched repository file: decoded content plus the integrity
// token required to update it.
type File struct {
	Content []byte
	SHA     string
}

// Committer identifies the author recorded on an update commit.
type Committer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateRequest describes a conditional file update. SHA must match the
// file's current version or the API rejects the write.
type UpdateRequest struct {
	Message   string
	Content   []byte
	SHA       string
	Committer Committer
}

type contentsResponse struct {
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

type updatePayload struct {
	Message   string    `json:"message"`
	Content   string    `json:"content"`
	SHA       string    `json:"sha"`
	Committer Committer `json:"committer"`
}

func (c *Client) contentsURL(owner, repo, path string) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.config.BaseURL, owner, repo, path)
}

// GetFile fetches a repository file and decodes its base64 content.
func (c *Client) GetFile(ctx context.Context, owner, repo, path string) (*File, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.contentsURL(owner, repo, path), nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch file: %d", resp.StatusCode)
	}

	var body contentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode contents response: %w", err)
	}

	// The API wraps base64 payloads at 60 columns.
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(body.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("decode file content: %w", err)
	}

	return &File{Content: decoded, SHA: body.SHA}, nil
}

// PutFile updates a repository file, conditioned on the SHA carried in the
// request. Any non-2xx status, including a SHA mismatch from a concurrent
// update, is returned as an error; the client never retries.
func (c *Client) PutFile(ctx context.Context, owner, repo, path string, update UpdateRequest) error {
	payload := updatePayload{
		Message:   update.Message,
		Content:   base64.StdEncoding.EncodeToString(update.Content),
		SHA:       update.SHA,
		Committer: update.Committer,
	}
	buf, err := json.Marshal(&payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentsURL(owner, repo, path), bytes.NewReader(buf))
	if err != nil {
		return err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("failed to update file: %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "token "+c.config.Token)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", c.config.UserAgent)
}
