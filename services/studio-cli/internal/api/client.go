package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"courseplatform/pkg/coursetree"
	"courseplatform/pkg/logger"

	"github.com/go-resty/resty/v2"
)

// Error - ответ шлюза вида {status:"error", message}.
type Error struct {
	Code    int    `json:"-"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway returned %d", e.Code)
	}
	return fmt.Sprintf("gateway returned %d: %s", e.Code, e.Message)
}

type SaveResult struct {
	Status    string              `json:"status"`
	Message   string              `json:"message"`
	Created   int                 `json:"created"`
	Updated   int                 `json:"updated"`
	Deleted   int                 `json:"deleted"`
	Structure coursetree.Snapshot `json:"structure"`
}

type Client struct {
	http *resty.Client
	log  *logger.Logger
}

func New(baseURL, token string, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(2).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() == http.StatusServiceUnavailable
		})
	if token != "" {
		c.SetAuthToken(token)
	}
	c.OnAfterResponse(func(_ *resty.Client, r *resty.Response) error {
		log.Debug("gateway call", "method", r.Request.Method, "url", r.Request.URL, "status", r.StatusCode(), "took", r.Time())
		return nil
	})
	return &Client{http: c, log: log}
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsError() {
		e, ok := resp.Error().(*Error)
		if !ok || e == nil {
			e = &Error{}
		}
		e.Code = resp.StatusCode()
		return e
	}
	return nil
}

// Login возвращает access-токен администратора.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
		Role        string `json:"role"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		SetError(&Error{}).
		Post("/api/v1/auth/login")
	if err := check(resp, err); err != nil {
		return "", err
	}
	if out.Role != "admin" {
		return "", fmt.Errorf("account %s is not an admin", email)
	}
	return out.AccessToken, nil
}

func (c *Client) GetStructure(ctx context.Context, courseID string) (coursetree.Snapshot, error) {
	var snap coursetree.Snapshot
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", courseID).
		SetResult(&snap).
		SetError(&Error{}).
		Get("/api/v1/admin/courses/{id}/structure")
	if err := check(resp, err); err != nil {
		return coursetree.Snapshot{}, err
	}
	return snap, nil
}

func (c *Client) SaveStructure(ctx context.Context, courseID string, snap coursetree.Snapshot) (*SaveResult, error) {
	var out SaveResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", courseID).
		SetBody(snap).
		SetResult(&out).
		SetError(&Error{}).
		Put("/api/v1/admin/courses/{id}/structure")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}
