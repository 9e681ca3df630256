package sellerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// VerifyGST passes a GST number through to the verification endpoint
// and returns the raw result.
func (c *Client) VerifyGST(ctx context.Context, gstNumber string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/verify/gst/"+url.PathEscape(gstNumber), nil)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req, "GST verification failed")
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// VerifyBankAccount posts just the IFSC and account number.
//
// NOTE: the server's bank-account verification schema requires far more
// fields than this call sends; the narrow shape is kept for
// compatibility with existing callers and will be rejected by the
// current server with a validation error.
func (c *Client) VerifyBankAccount(ctx context.Context, ifscCode, accountNumber string) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]string{
		"ifscCode":      ifscCode,
		"accountNumber": accountNumber,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/verify/bank-account", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req, "bank account verification failed")
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
