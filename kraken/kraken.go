// Package kraken implements the authenticated client and the trade ingestion
// pipeline for the Kraken private REST API.
//
// The client speaks to the two paginated history collections the calculator
// needs: executed trades (TradesHistory) and closed orders (ClosedOrders).
// The pipeline pages through them, filters and deduplicates the records, and
// yields the chronologically ordered trade sequence the FIFO engine consumes.
package kraken

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the production Kraken REST endpoint.
const DefaultBaseURL = "https://api.kraken.com"

const (
	tradesHistoryPath = "/0/private/TradesHistory"
	closedOrdersPath  = "/0/private/ClosedOrders"
)

// APIError is a non-empty error array in a Kraken response envelope.
type APIError []string

func (e APIError) Error() string {
	return "kraken API error: " + strings.Join(e, ", ")
}

// Client issues signed requests against the Kraken private REST API.
// It is safe for sequential reuse across both history collections, but is
// not meant to be shared between concurrent callers.
type Client struct {
	// BaseURL of the REST service, DefaultBaseURL unless overridden (tests).
	BaseURL string

	key    string
	secret string
	client *http.Client
}

// NewClient returns a client authenticating with the given API key pair.
// The secret is the base64-encoded private key as issued by Kraken.
func NewClient(key, secret string) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		key:     key,
		secret:  secret,
		client:  new(http.Client),
	}
}

// nonce returns a strictly increasing request nonce. Tenth-of-microsecond
// resolution keeps successive sequential requests distinct.
func nonce() string {
	return strconv.FormatInt(time.Now().UnixNano()/10, 10)
}

// sign computes the API-Sign header for a request:
// HMAC-SHA512(path + SHA256(nonce + POST data)) keyed with the decoded secret.
func (c *Client) sign(path, data, nonce string) (string, error) {
	secret, err := base64.StdEncoding.DecodeString(c.secret)
	if err != nil {
		return "", fmt.Errorf("secret key is not valid base64: %w", err)
	}
	digest := sha256.Sum256([]byte(nonce + data))
	mac := hmac.New(sha512.New, secret)
	mac.Write([]byte(path))
	mac.Write(digest[:])
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// jwpost performs one signed POST request and unmarshals the result payload
// of the response envelope into result.
func (c *Client) jwpost(path string, params url.Values, result any) error {
	if params == nil {
		params = url.Values{}
	}
	n := nonce()
	params.Set("nonce", n)
	body := params.Encode()

	sig, err := c.sign(path, body, n)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+path, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	req.Header.Set("API-Key", c.key)
	req.Header.Set("API-Sign", sig)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http POST %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}

	// every private endpoint shares the {error, result} envelope
	var envelope struct {
		Error  []string        `json:"error"`
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(buf.Bytes(), &envelope); err != nil {
		return fmt.Errorf("cannot parse response of %s: %w", path, err)
	}
	if len(envelope.Error) > 0 {
		return APIError(envelope.Error)
	}
	if envelope.Result == nil {
		return fmt.Errorf("response of %s carries no result", path)
	}
	return json.Unmarshal(envelope.Result, result)
}

// TradeRecord is the wire shape of one executed trade in a TradesHistory
// page. Quantities are decimal strings, exactly as Kraken returns them.
type TradeRecord struct {
	OrderTxID string  `json:"ordertxid"`
	Pair      string  `json:"pair"`
	Time      float64 `json:"time"`
	Type      string  `json:"type"`
	OrderType string  `json:"ordertype"`
	Price     string  `json:"price"`
	Fee       string  `json:"fee"`
	Vol       string  `json:"vol"`
	Cost      string  `json:"cost"`
}

// TradesPage is one page of the executed-trades collection: records keyed by
// trade txid, plus the server-reported total across all pages.
type TradesPage struct {
	Trades map[string]TradeRecord `json:"trades"`
	Count  int                    `json:"count"`
}

// OrdersPage is one page of the closed-orders collection. Only the order ids
// (the map keys) matter to the pipeline; order details are discarded.
type OrdersPage struct {
	Closed map[string]json.RawMessage `json:"closed"`
	Count  int                        `json:"count"`
}

// TradesHistory fetches one page of the executed-trades collection at the
// given offset.
func (c *Client) TradesHistory(q Query, offset int) (TradesPage, error) {
	var page TradesPage
	err := c.jwpost(tradesHistoryPath, q.values(offset), &page)
	return page, err
}

// ClosedOrders fetches one page of the closed-orders collection at the given
// offset.
func (c *Client) ClosedOrders(q Query, offset int) (OrdersPage, error) {
	var page OrdersPage
	err := c.jwpost(closedOrdersPath, q.values(offset), &page)
	return page, err
}
