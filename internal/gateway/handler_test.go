package gateway

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvt/bookstore-backend/internal/config"
)

func makeGatewayApp(cfg config.Config) *fiber.App {
	app := fiber.New()
	app.Use(CorrelationID())
	NewHandler(cfg).RegisterRoutes(app)
	return app
}

func TestForward_PassesStatusAndBodyThrough(t *testing.T) {
	var seen *http.Request
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, `{"message":"email already registered"}`)
	}))
	defer upstream.Close()

	app := makeGatewayApp(config.Config{
		CustomerServiceURL: upstream.URL,
		BookServiceURL:     upstream.URL,
		CartServiceURL:     upstream.URL,
		UpstreamTimeout:    2 * time.Second,
	})

	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(`{"email":"minh@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer some-token")
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	body, _ := io.ReadAll(res.Body)
	assert.JSONEq(t, `{"message":"email already registered"}`, string(body))

	// method, path, body and headers arrive at the upstream unchanged
	require.NotNil(t, seen)
	assert.Equal(t, "POST", seen.Method)
	assert.Equal(t, "/api/v1/sign-up", seen.URL.Path)
	assert.Equal(t, "Bearer some-token", seen.Header.Get("Authorization"))
	assert.NotEmpty(t, seen.Header.Get(HeaderCorrelationID))
}

func TestForward_PreservesQueryString(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, r.URL.RawQuery)
	}))
	defer upstream.Close()

	app := makeGatewayApp(config.Config{
		CustomerServiceURL: upstream.URL,
		BookServiceURL:     upstream.URL,
		CartServiceURL:     upstream.URL,
		UpstreamTimeout:    2 * time.Second,
	})

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/books?ids=1,2,3", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(res.Body)
	assert.Equal(t, "ids=1,2,3", string(body))
}

func TestForward_DeadUpstreamIsBadGateway(t *testing.T) {
	// grab a port nobody is listening on
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	app := makeGatewayApp(config.Config{
		CustomerServiceURL: deadURL,
		BookServiceURL:     deadURL,
		CartServiceURL:     deadURL,
		UpstreamTimeout:    500 * time.Millisecond,
	})

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/cart", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), "correlationId")
}

func TestCorrelationID_EchoedAndReused(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, r.Header.Get(HeaderCorrelationID))
	}))
	defer upstream.Close()

	app := makeGatewayApp(config.Config{
		CustomerServiceURL: upstream.URL,
		BookServiceURL:     upstream.URL,
		CartServiceURL:     upstream.URL,
		UpstreamTimeout:    2 * time.Second,
	})

	// a caller-supplied id is kept rather than replaced
	req := httptest.NewRequest("GET", "/api/v1/books", nil)
	req.Header.Set(HeaderCorrelationID, "abc-123")
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "abc-123", res.Header.Get(HeaderCorrelationID))
	body, _ := io.ReadAll(res.Body)
	assert.Equal(t, "abc-123", string(body))

	// without one, the gateway mints an id and echoes it
	res, err = app.Test(httptest.NewRequest("GET", "/api/v1/books", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, res.Header.Get(HeaderCorrelationID))
}
