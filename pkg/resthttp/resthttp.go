package resthttp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	headerKeyRequestID = "X-Request-Id"

	defaultTimeout = 10 * time.Second
	retryCount     = 2
	retryWait      = 100 * time.Millisecond
)

// Client json api client rooted at a base url
type Client struct {
	r *resty.Client
}

// New client, server errors are retried
func New(baseURL string) *Client {
	r := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Charset", "utf-8").
		SetTimeout(defaultTimeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWait).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= 500
		})

	return &Client{r: r}
}

// Get decode the json body of path into obj
func (c *Client) Get(ctx context.Context, requestID, path string, obj interface{}) error {
	resp, err := c.r.R().
		SetContext(ctx).
		SetHeader(headerKeyRequestID, requestID).
		Get(path)
	if err != nil {
		return err
	}

	return parseResponse(resp, obj)
}

func parseResponse(r *resty.Response, obj interface{}) error {
	if !r.IsSuccess() {
		return fmt.Errorf("%s: %s", r.Status(), string(r.Body()))
	}

	if obj != nil {
		return json.Unmarshal(r.Body(), obj)
	}

	return nil
}
