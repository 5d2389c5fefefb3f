package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, HTTPError) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, err, "fallback")

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespond(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"missing field", ErrMissing("customer_name"), http.StatusBadRequest, CodeMissingField},
		{"invalid slot", ErrBusiness(CodeInvalidSlot), http.StatusBadRequest, CodeInvalidSlot},
		{"slot taken", ErrBusiness(CodeSlotAlreadyTaken), http.StatusConflict, CodeSlotAlreadyTaken},
		{"not found", ErrBusiness(CodeAppointmentNotFound), http.StatusNotFound, CodeAppointmentNotFound},
		{"store", StoreUnavailable(errors.New("dial tcp: refused")), http.StatusServiceUnavailable, "store_unavailable"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := respond(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestRespond_SlotTakenMessageIsDistinct(t *testing.T) {
	_, taken := respond(t, ErrBusiness(CodeSlotAlreadyTaken))
	_, missing := respond(t, ErrMissing("time"))
	_, invalid := respond(t, ErrBusiness(CodeInvalidSlot))

	assert.NotEqual(t, taken.Message, missing.Message)
	assert.NotEqual(t, taken.Message, invalid.Message)
	assert.Equal(t, "time", missing.Field)
}

func TestIsBusiness_Wrapped(t *testing.T) {
	err := errors.Join(errors.New("context"), ErrBusiness(CodeInvalidStatus))

	assert.True(t, IsBusiness(err, CodeInvalidStatus))
	assert.False(t, IsBusiness(err, CodeInvalidSlot))
	assert.False(t, IsStoreUnavailable(err))
	assert.Nil(t, StoreUnavailable(nil))
}
