// Package ledger calls the external accumulated-cashback API.
package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"cashback-tracker/internal/pkg/config"
	"cashback-tracker/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		baseURL: cfg.Ledger.BaseURL,
		token:   cfg.Ledger.Token,
		http:    &http.Client{Timeout: cfg.Ledger.Timeout},
	}
}

type creditResponse struct {
	Body struct {
		Credit *json.Number `json:"credit"`
	} `json:"body"`
}

// AccumulatedCredit fetches the reseller's accumulated cashback balance.
// Any non-2xx response or unexpected body shape is an error; there is no
// retry here, that belongs to the caller if anywhere.
func (c *Client) AccumulatedCredit(ctx context.Context, cpf string) (decimal.Decimal, error) {
	reqURL := c.baseURL + "?cpf=" + url.QueryEscape(cpf)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return decimal.Zero, errs.Wrap(err, "failed to build ledger request")
	}
	req.Header.Set("token", c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return decimal.Zero, errs.Wrap(err, "ledger request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decimal.Zero, errs.New("ledger returned status " + resp.Status)
	}

	var payload creditResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, errs.Wrap(err, "failed to decode ledger response")
	}
	if payload.Body.Credit == nil {
		return decimal.Zero, errs.New("ledger response missing body.credit")
	}

	credit, err := decimal.NewFromString(payload.Body.Credit.String())
	if err != nil {
		return decimal.Zero, errs.Wrap(err, "ledger returned non-numeric credit")
	}

	return credit, nil
}
