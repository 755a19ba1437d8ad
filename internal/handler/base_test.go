package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/config"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/handler"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/middleware"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/model"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/server"
)

func newHandler(t *testing.T, buf *bytes.Buffer) handler.Handler {
	t.Helper()

	logger := zerolog.New(buf).Level(zerolog.DebugLevel)
	srv, err := server.New(config.DefaultConfig(), &logger, nil)
	require.NoError(t, err)

	return handler.NewHandler(srv)
}

func okHandler(echo.Context, handler.NoRequest) (model.Response, error) {
	return model.OKResponse, nil
}

func TestHandle_FallsBackToServerLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := newHandler(t, &buf)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/contact", nil), rec)

	err := handler.Handle[handler.NoRequest, model.Response](h, handler.DecodeNothing, okHandler, http.StatusOK)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Contains(t, buf.String(), "request completed successfully")
}

func TestHandle_PrefersRequestLogger(t *testing.T) {
	t.Parallel()

	var appBuf, reqBuf bytes.Buffer
	h := newHandler(t, &appBuf)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/contact", nil), rec)

	reqLogger := zerolog.New(&reqBuf).Level(zerolog.DebugLevel)
	c.Set(middleware.LoggerKey, &reqLogger)

	err := handler.Handle[handler.NoRequest, model.Response](h, handler.DecodeNothing, okHandler, http.StatusOK)(c)
	require.NoError(t, err)

	assert.Contains(t, reqBuf.String(), "request completed successfully")
	assert.Empty(t, appBuf.String())
}
