package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "eventdesk/internal/delivery/context"
	domainerrors "eventdesk/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAppError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantHandled bool
		wantStatus  int
		wantCode    string
		wantDetails string
	}{
		{
			name:        "wrapped upload failure keeps provider detail",
			err:         errors.Wrap(domainerrors.ErrUploadFailed.WithDetails("quota exceeded"), "create event"),
			wantHandled: true,
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "UPLOAD_FAILED",
			wantDetails: "quota exceeded",
		},
		{
			name:        "not found",
			err:         domainerrors.ErrObjectNotFound,
			wantHandled: true,
			wantStatus:  http.StatusNotFound,
			wantCode:    "OBJECT_NOT_FOUND",
		},
		{
			name: "plain error is left to the caller",
			err:  errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/image/obj-1", nil), rec)
			deliverycontext.SetRequestID(c, "req-9")

			handled := HandleAppError(c, tt.err)

			assert.Equal(t, tt.wantHandled, handled)
			if !tt.wantHandled {
				assert.Empty(t, rec.Body.String())

				return
			}

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantDetails, body.Details)
			assert.Equal(t, "req-9", body.RequestID)
		})
	}
}
