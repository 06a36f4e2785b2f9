package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/marketplace/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping() error { return p.err }

func TestNewSystemHandler(t *testing.T) {
	h := NewSystemHandler("marketplace", "memory", nil)
	assert.NotNil(t, h)
	assert.False(t, h.startTime.IsZero())
}

func TestSystemHandler_Health(t *testing.T) {
	t.Run("memory ledger", func(t *testing.T) {
		h := NewSystemHandler("marketplace", "memory", nil)
		c, w := newTestContext(http.MethodGet, "/health")

		h.Health(c)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		data := resp.Data.(map[string]any)
		assert.Equal(t, "ok", data["status"])
		assert.Equal(t, "marketplace", data["name"])
		assert.Equal(t, "memory", data["ledger"])
		assert.NotEmpty(t, data["go_version"])
		assert.NotEmpty(t, data["uptime"])
	})

	t.Run("reachable store", func(t *testing.T) {
		h := NewSystemHandler("marketplace", "sqlite", stubPinger{})
		c, w := newTestContext(http.MethodGet, "/health")

		h.Health(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "sqlite", decodeResponse(t, w).Data.(map[string]any)["ledger"])
	})

	t.Run("unreachable store", func(t *testing.T) {
		h := NewSystemHandler("marketplace", "sqlite", stubPinger{err: errors.New("sql: database is closed")})
		c, w := newTestContext(http.MethodGet, "/health")

		h.Health(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
		assert.Equal(t, "Ledger store unavailable", resp.Error.Message)
	})
}
