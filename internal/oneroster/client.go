// Package oneroster is a narrow OneRoster client: just the teacher,
// roster, line item, and result operations the sync engine needs, not
// a general-purpose SIS library.
package oneroster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API is the remote surface consumed by the sync engine. Decorators
// and test fakes implement it alongside Client.
type API interface {
	TeacherByEmail(ctx context.Context, email string) (*User, error)
	ClassesForTeacher(ctx context.Context, teacherID string) ([]Class, error)
	StudentsForClass(ctx context.Context, classID string) ([]User, error)
	LineItemsForClass(ctx context.Context, classID string) ([]LineItem, error)
	LineItem(ctx context.Context, id string) (*LineItem, error)
	Categories(ctx context.Context, filter string) ([]Category, error)
	GradingPeriods(ctx context.Context) ([]GradingPeriod, error)
	PutLineItem(ctx context.Context, li LineItem) error
	PutResult(ctx context.Context, r Result) error
}

// Config holds connection settings for one SIS deployment.
type Config struct {
	// BaseURL is the OneRoster root, e.g. https://sis.example.com/ims/oneroster/v1p1.
	BaseURL string
	// TokenURL is the OAuth2 token endpoint for the client-credentials grant.
	TokenURL     string
	ClientID     string
	ClientSecret string
	// Timeout bounds a single HTTP request. Default: 30s.
	Timeout time.Duration
}

// Validate checks that every required connection setting is present.
func (c Config) Validate() error {
	switch {
	case c.BaseURL == "":
		return fmt.Errorf("%w: SBGSYNC_SIS_BASE_URL", ErrConfigMissing)
	case c.TokenURL == "":
		return fmt.Errorf("%w: SBGSYNC_SIS_TOKEN_URL", ErrConfigMissing)
	case c.ClientID == "":
		return fmt.Errorf("%w: SBGSYNC_SIS_CLIENT_ID", ErrConfigMissing)
	case c.ClientSecret == "":
		return fmt.Errorf("%w: SBGSYNC_SIS_CLIENT_SECRET", ErrConfigMissing)
	}
	return nil
}

// Client talks to the SIS over HTTP with a cached bearer token.
type Client struct {
	cfg    Config
	client *http.Client

	token       string
	tokenExpiry time.Time
}

// NewClient creates a Client from cfg. The token is acquired lazily on
// the first request.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}, nil
}

// accessToken returns a cached token, refreshing it via the
// client-credentials grant only when expired.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", &TokenError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &TokenError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &TokenError{Status: resp.StatusCode}
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", &TokenError{Err: fmt.Errorf("decode token response: %w", err)}
	}
	if tok.AccessToken == "" {
		return "", &TokenError{Err: fmt.Errorf("token response missing access_token")}
	}

	c.token = tok.AccessToken
	// Refresh one minute early so a token never expires mid-batch.
	expiresIn := tok.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 3600
	}
	c.tokenExpiry = time.Now().Add(time.Duration(expiresIn)*time.Second - time.Minute)
	return c.token, nil
}

// do issues one authenticated request and decodes a 2xx JSON body into
// out (skipped when out is nil). Non-2xx responses become APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method,
		strings.TrimRight(c.cfg.BaseURL, "/")+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Method:   method,
			Endpoint: path,
			Status:   resp.StatusCode,
			Body:     strings.TrimSpace(string(raw)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) TeacherByEmail(ctx context.Context, email string) (*User, error) {
	filter := url.QueryEscape(fmt.Sprintf("email='%s'", email))
	var resp usersResponse
	if err := c.do(ctx, http.MethodGet, "/teachers?filter="+filter, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Users) == 0 {
		return nil, nil
	}
	return &resp.Users[0], nil
}

func (c *Client) ClassesForTeacher(ctx context.Context, teacherID string) ([]Class, error) {
	var resp classesResponse
	if err := c.do(ctx, http.MethodGet, "/teachers/"+url.PathEscape(teacherID)+"/classes", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Classes, nil
}

func (c *Client) StudentsForClass(ctx context.Context, classID string) ([]User, error) {
	var resp usersResponse
	if err := c.do(ctx, http.MethodGet, "/classes/"+url.PathEscape(classID)+"/students", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *Client) LineItemsForClass(ctx context.Context, classID string) ([]LineItem, error) {
	var resp lineItemsResponse
	if err := c.do(ctx, http.MethodGet, "/classes/"+url.PathEscape(classID)+"/lineItems", nil, &resp); err != nil {
		return nil, err
	}
	return resp.LineItems, nil
}

func (c *Client) LineItem(ctx context.Context, id string) (*LineItem, error) {
	var resp lineItemResponse
	if err := c.do(ctx, http.MethodGet, "/lineItems/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.LineItem, nil
}

func (c *Client) Categories(ctx context.Context, filter string) ([]Category, error) {
	path := "/categories"
	if filter != "" {
		path += "?filter=" + url.QueryEscape(filter)
	}
	var resp categoriesResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

func (c *Client) GradingPeriods(ctx context.Context) ([]GradingPeriod, error) {
	var resp gradingPeriodsResponse
	if err := c.do(ctx, http.MethodGet, "/gradingPeriods", nil, &resp); err != nil {
		return nil, err
	}
	return resp.GradingPeriods, nil
}

// PutLineItem creates or replaces the assignment column keyed by the
// line item's sourcedId.
func (c *Client) PutLineItem(ctx context.Context, li LineItem) error {
	return c.do(ctx, http.MethodPut, "/lineItems/"+url.PathEscape(li.SourcedID),
		lineItemRequest{LineItem: li}, nil)
}

// PutResult posts one score keyed by the result's sourcedId.
func (c *Client) PutResult(ctx context.Context, r Result) error {
	return c.do(ctx, http.MethodPut, "/results/"+url.PathEscape(r.SourcedID),
		resultRequest{Result: r}, nil)
}
