package errs_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/errs"
)

func TestHTTPError_Body(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    *errs.HTTPError
		status int
		want   string
	}{
		{
			name:   "bad request",
			err:    errs.NewBadRequestError(errs.MessageMissingName),
			status: http.StatusBadRequest,
			want:   `{"ok":false,"error":"Missing name"}`,
		},
		{
			name:   "config",
			err:    errs.NewConfigError(errs.MessageMissingAPIKey),
			status: http.StatusInternalServerError,
			want:   `{"ok":false,"error":"Missing RESEND_API_KEY"}`,
		},
		{
			name:   "bad gateway keeps detail verbatim",
			err:    errs.NewBadGatewayError(`{"message":"nope"}`),
			status: http.StatusBadGateway,
			want:   `{"ok":false,"error":"Resend error","detail":"{\"message\":\"nope\"}"}`,
		},
		{
			name:   "server error stringifies cause",
			err:    errs.NewServerError(errors.New("boom")),
			status: http.StatusInternalServerError,
			want:   `{"ok":false,"error":"Server error","detail":"boom"}`,
		},
		{
			name:   "method not allowed",
			err:    errs.NewMethodNotAllowedError(),
			status: http.StatusMethodNotAllowed,
			want:   `{"ok":false,"error":"Method Not Allowed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.status, tt.err.Status)

			raw, err := json.Marshal(tt.err.Body())
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}

func TestHTTPError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("root")
	err := errs.NewServerError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Server error: root", err.Error())

	withCause := errs.NewBadRequestError("x").WithCause(cause)
	assert.ErrorIs(t, withCause, cause)
	assert.Equal(t, http.StatusBadRequest, withCause.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BAD_REQUEST", errs.MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "METHOD_NOT_ALLOWED", errs.MakeUpperCaseWithUnderscores(http.StatusText(http.StatusMethodNotAllowed)))
}
