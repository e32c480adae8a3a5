package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/tsudoi-club/tsudoi/internal/collection"
	"github.com/tsudoi-club/tsudoi/internal/model"
)

const (
	tokenHeader    = "access_token"
	requestTimeout = 15 * time.Second
)

// Client talks to the club content service. It is safe to copy the token
// in at login and clear it at logout; nothing else about it is stateful.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a Client for the given server base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// SetToken installs the session token sent with every request.
// An empty token logs the client out.
func (c *Client) SetToken(token string) {
	c.token = token
}

// pagedEnvelope is the wire shape of the paged list endpoint.
type pagedEnvelope struct {
	Data []model.Item `json:"data"`
	Meta struct {
		TotalItems int `json:"totalItems"`
	} `json:"meta"`
}

// ListPage fetches one page of a collection, optionally narrowed by a
// search term.
func (c *Client) ListPage(ctx context.Context, col model.Collection, page, pageSize int, term string) (collection.PageResult, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))
	if term != "" {
		q.Set("q", term)
	}

	var envelope pagedEnvelope
	if err := c.getJSON(ctx, fmt.Sprintf("/%s?%s", col, q.Encode()), &envelope); err != nil {
		return collection.PageResult{}, err
	}
	return collection.PageResult{Items: envelope.Data, TotalItems: envelope.Meta.TotalItems}, nil
}

// ListAll fetches a whole collection for locally paged screens.
func (c *Client) ListAll(ctx context.Context, col model.Collection) (collection.PageResult, error) {
	var items []model.Item
	if err := c.getJSON(ctx, "/"+string(col), &items); err != nil {
		return collection.PageResult{}, err
	}
	return collection.PageResult{Items: items, TotalItems: len(items)}, nil
}

// GetItem fetches a single item, used to prefill the edit modal.
func (c *Client) GetItem(ctx context.Context, col model.Collection, id int64) (model.Item, error) {
	var item model.Item
	err := c.getJSON(ctx, fmt.Sprintf("/%s/%d", col, id), &item)
	return item, err
}

// Draft carries the user-entered fields of a create or edit. When
// MediaPath points at a local file the request goes out as multipart
// with the file attached; otherwise it is plain JSON.
type Draft struct {
	Title     string `json:"title,omitempty"`
	Body      string `json:"body,omitempty"`
	MediaPath string `json:"-"`
}

// CreateItem creates an item and returns the server's copy.
func (c *Client) CreateItem(ctx context.Context, col model.Collection, draft Draft) (model.Item, error) {
	return c.sendItem(ctx, http.MethodPost, "/"+string(col), draft)
}

// UpdateItem patches an existing item. Only the owner may do this; the
// server answers 401 otherwise.
func (c *Client) UpdateItem(ctx context.Context, col model.Collection, id int64, draft Draft) (model.Item, error) {
	return c.sendItem(ctx, http.MethodPatch, fmt.Sprintf("/%s/%d", col, id), draft)
}

// DeleteItem removes an item.
func (c *Client) DeleteItem(ctx context.Context, col model.Collection, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/%s/%d", col, id), nil, "")
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (model.Session, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return model.Session{}, fmt.Errorf("marshal login: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", bytes.NewReader(body), "application/json")
	if err != nil {
		return model.Session{}, err
	}

	var reply struct {
		Token    string `json:"token"`
		Nickname string `json:"nickname"`
	}
	if err := c.doJSON(req, &reply); err != nil {
		return model.Session{}, err
	}

	session := model.Session{Email: email, Nickname: reply.Nickname, Token: reply.Token}
	c.token = reply.Token
	return session, nil
}

// Me returns the identity behind the current token.
func (c *Client) Me(ctx context.Context) (model.Session, error) {
	var session model.Session
	if err := c.getJSON(ctx, "/auth/me", &session); err != nil {
		return model.Session{}, err
	}
	session.Token = c.token
	return session, nil
}

// ListQuestions fetches every quiz question for the random draw.
func (c *Client) ListQuestions(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	err := c.getJSON(ctx, "/"+string(model.Special), &questions)
	return questions, err
}

// CreateQuestion adds a quiz question.
func (c *Client) CreateQuestion(ctx context.Context, prompt, answer string) (model.Question, error) {
	return c.sendQuestion(ctx, http.MethodPost, "/"+string(model.Special), prompt, answer)
}

// UpdateQuestion edits a quiz question; owner only.
func (c *Client) UpdateQuestion(ctx context.Context, id int64, prompt, answer string) (model.Question, error) {
	return c.sendQuestion(ctx, http.MethodPatch, fmt.Sprintf("/%s/%d", model.Special, id), prompt, answer)
}

// DeleteQuestion removes a quiz question; owner only.
func (c *Client) DeleteQuestion(ctx context.Context, id int64) error {
	return c.DeleteItem(ctx, model.Special, id)
}

func (c *Client) sendQuestion(ctx context.Context, method, path, prompt, answer string) (model.Question, error) {
	body, err := json.Marshal(map[string]string{"question": prompt, "answer": answer})
	if err != nil {
		return model.Question{}, fmt.Errorf("marshal question: %w", err)
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(body), "application/json")
	if err != nil {
		return model.Question{}, err
	}
	var question model.Question
	err = c.doJSON(req, &question)
	return question, err
}

func (c *Client) sendItem(ctx context.Context, method, path string, draft Draft) (model.Item, error) {
	var (
		body        io.Reader
		contentType string
		err         error
	)
	if draft.MediaPath != "" {
		body, contentType, err = multipartBody(draft)
	} else {
		var data []byte
		data, err = json.Marshal(draft)
		body, contentType = bytes.NewReader(data), "application/json"
	}
	if err != nil {
		return model.Item{}, err
	}

	req, err := c.newRequest(ctx, method, path, body, contentType)
	if err != nil {
		return model.Item{}, err
	}

	var item model.Item
	err = c.doJSON(req, &item)
	return item, err
}

// multipartBody encodes a draft with its media file as a multipart form.
func multipartBody(draft Draft) (io.Reader, string, error) {
	file, err := os.Open(draft.MediaPath)
	if err != nil {
		return nil, "", fmt.Errorf("open media: %w", err)
	}
	defer func() { _ = file.Close() }()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if draft.Title != "" {
		if err := w.WriteField("title", draft.Title); err != nil {
			return nil, "", fmt.Errorf("write field: %w", err)
		}
	}
	if draft.Body != "" {
		if err := w.WriteField("body", draft.Body); err != nil {
			return nil, "", fmt.Errorf("write field: %w", err)
		}
	}
	part, err := w.CreateFormFile("file", filepath.Base(draft.MediaPath))
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("copy media: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set(tokenHeader, c.token)
	}
	return req, nil
}

// do runs a request and maps non-2xx statuses to the error taxonomy.
// The caller owns the response body.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	_ = resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, req.URL.Path)
	default:
		return nil, fmt.Errorf("%w: status %d: %s", ErrRequest, resp.StatusCode, bytes.TrimSpace(body))
	}
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}
