//go:build unit

package ledger_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cashback-tracker/internal/infra/ledger"
	"cashback-tracker/internal/pkg/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(baseURL string) *ledger.Client {
	cfg := config.NewTestConfig()
	cfg.Ledger = config.LedgerConfig{
		BaseURL: baseURL,
		Token:   "ledger-token",
		Timeout: time.Second,
	}
	return ledger.NewClient(cfg)
}

func TestAccumulatedCredit(t *testing.T) {
	t.Run("parses body.credit and sends token header", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "ledger-token", r.Header.Get("token"))
			assert.Equal(t, "67976752006", r.URL.Query().Get("cpf"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"statusCode":200,"body":{"credit":3456.78}}`))
		}))
		defer srv.Close()

		credit, err := newClient(srv.URL).AccumulatedCredit(context.Background(), "67976752006")
		require.NoError(t, err)
		assert.True(t, credit.Equal(decimal.RequireFromString("3456.78")), "got %s", credit)
	})

	t.Run("non-success status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := newClient(srv.URL).AccumulatedCredit(context.Background(), "67976752006")
		require.Error(t, err)
	})

	t.Run("missing credit field is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"body":{}}`))
		}))
		defer srv.Close()

		_, err := newClient(srv.URL).AccumulatedCredit(context.Background(), "67976752006")
		require.Error(t, err)
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		_, err := newClient(srv.URL).AccumulatedCredit(context.Background(), "67976752006")
		require.Error(t, err)
	})
}
