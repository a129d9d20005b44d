package gateway

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// serviceClient forwards a request to one upstream service, preserving
// method, path, query string, body, auth and correlation headers.
type serviceClient struct {
	baseURL string
	http    *http.Client
}

func newServiceClient(baseURL string, client *http.Client) *serviceClient {
	return &serviceClient{baseURL: baseURL, http: client}
}

func (sc *serviceClient) do(c *fiber.Ctx) (*http.Response, error) {
	var body io.Reader
	if b := c.Body(); len(b) > 0 {
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(c.Context(), c.Method(), sc.baseURL+c.OriginalURL(), body)
	if err != nil {
		return nil, err
	}

	if ct := c.Get(fiber.HeaderContentType); ct != "" {
		req.Header.Set(fiber.HeaderContentType, ct)
	}
	if auth := c.Get(fiber.HeaderAuthorization); auth != "" {
		req.Header.Set(fiber.HeaderAuthorization, auth)
	}
	if cid := CorrelationIDFromCtx(c); cid != "" {
		req.Header.Set(HeaderCorrelationID, cid)
	}

	return sc.http.Do(req)
}
