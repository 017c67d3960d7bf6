// Package external holds clients for third-party APIs.
package external

import (
	"context"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/gigglywizard/scanner-backend/types"
)

const (
	DefaultHoneypotURL = "https://api.honeypot.is"
	isHoneypotPath     = "/v2/IsHoneypot"

	maxBodyBytes = 1 << 20

	// largest integer a float64 holds exactly
	maxInteger  = 1 << 53
	maxDecimals = 255

	// UnknownFlag stands in for a flag object carrying no text.
	UnknownFlag = "Unknown risk flag"
)

type HoneypotConfig struct {
	BaseURL string
	// ChainID is appended as chainID when set, otherwise the API picks the chain.
	ChainID string
	Timeout time.Duration

	Logger *zap.Logger
}

type HoneypotClient struct {
	baseURL string
	chainID string

	httpClient *http.Client
	logger     *zap.Logger
}

func NewHoneypotClient(cfg HoneypotConfig) *HoneypotClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultHoneypotURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	netTransport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: 5 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &HoneypotClient{
		baseURL: baseURL,
		chainID: cfg.ChainID,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: netTransport,
		},
		logger: logger.With(zap.String("client", "honeypot")),
	}
}

// IsHoneypot fetches the risk report of one token address. Errors wrap one of
// types.ErrNetworkFailure, types.ErrNonSuccessStatus or types.ErrMalformedBody.
func (h *HoneypotClient) IsHoneypot(ctx context.Context, address string) (*types.TokenReport, error) {
	q := url.Values{}
	q.Set("address", address)
	if h.chainID != "" {
		q.Set("chainID", h.chainID)
	}
	reqURL := h.baseURL + isHoneypotPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %v: %w", err, types.ErrNetworkFailure)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %v: %w", isHoneypotPath, err, types.ErrNetworkFailure)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %v: %w", err, types.ErrNetworkFailure)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		h.logger.Debug("non-success status", zap.Int("status", resp.StatusCode), zap.ByteString("body", truncate(body, 256)))
		return nil, fmt.Errorf("status %d: %w", resp.StatusCode, types.ErrNonSuccessStatus)
	}

	report, err := DecodeReport(body)
	if err != nil {
		return nil, err
	}
	h.logger.Debug("report fetched", zap.String("address", address), zap.Bool("honeypot", report.IsHoneypot))
	return report, nil
}

// DecodeReport reads a report in the flat shape (PascalCase or camelCase keys) or
// in the nested honeypot.is v2 shape. Missing numbers default to zero, a missing
// liquidity figure leaves Liquidity.Known false, and a present value of the wrong
// type is a types.ErrMalformedBody.
func DecodeReport(body []byte) (*types.TokenReport, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid json: %w", types.ErrMalformedBody)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, fmt.Errorf("body is not an object: %w", types.ErrMalformedBody)
	}

	d := decoder{root: root}
	report := &types.TokenReport{
		IsHoneypot:      d.boolean("isHoneypot", "IsHoneypot", "isHoneypot", "honeypotResult.isHoneypot"),
		BuyTax:          d.number("buyTax", "BuyTax", "buyTax", "simulationResult.buyTax"),
		SellTax:         d.number("sellTax", "SellTax", "sellTax", "simulationResult.sellTax"),
		BuyGas:          d.integer("buyGas", "BuyGas", "buyGas", "simulationResult.buyGas"),
		SellGas:         d.integer("sellGas", "SellGas", "sellGas", "simulationResult.sellGas"),
		Holders:         d.integer("holders", "Holders", "holders", "token.totalHolders", "holderAnalysis.holders"),
		CreatorHoldings: d.number("creatorHoldings", "CreatorHoldings", "creatorHoldings"),
		Flags:           d.flags("Flags", "flags", "summary.flags"),
	}

	if usd, ok := d.lookup("Liquidity.USD", "liquidity.usd", "pair.liquidity"); ok {
		report.Liquidity.USD = d.toNumber("liquidity.usd", usd)
		report.Liquidity.Known = true
	}
	report.Liquidity.ETH = d.number("liquidity.eth", "Liquidity.ETH", "liquidity.eth")

	if tok, ok := d.lookup("Token", "token"); ok {
		if !tok.IsObject() {
			d.fail("token", tok)
		} else {
			td := decoder{root: tok}
			report.Token = &types.TokenInfo{
				Name:        td.text("Name", "name"),
				Symbol:      td.text("Symbol", "symbol"),
				Decimals:    td.decimals("Decimals", "decimals"),
				TotalSupply: td.text("TotalSupply", "totalSupply"),
			}
			if td.err != nil && d.err == nil {
				d.err = td.err
			}
		}
	}

	if d.err != nil {
		return nil, d.err
	}
	return report, nil
}

// decoder keeps the first type error it meets so field extraction reads linearly.
type decoder struct {
	root gjson.Result
	err  error
}

func (d *decoder) lookup(paths ...string) (gjson.Result, bool) {
	for _, p := range paths {
		if r := d.root.Get(p); r.Exists() && r.Type != gjson.Null {
			return r, true
		}
	}
	return gjson.Result{}, false
}

func (d *decoder) fail(field string, r gjson.Result) {
	if d.err == nil {
		d.err = fmt.Errorf("field %s has unexpected value %s: %w", field, r.Raw, types.ErrMalformedBody)
	}
}

// toNumber accepts JSON numbers and numeric strings with an optional "%" suffix.
// NaN and infinities are malformed.
func (d *decoder) toNumber(field string, r gjson.Result) float64 {
	var v float64
	switch r.Type {
	case gjson.Number:
		v = r.Float()
	case gjson.String:
		s := strings.TrimSuffix(strings.TrimSpace(r.Str), "%")
		if s == "" {
			return 0
		}
		var err error
		if v, err = strconv.ParseFloat(s, 64); err != nil {
			d.fail(field, r)
			return 0
		}
	default:
		d.fail(field, r)
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		d.fail(field, r)
		return 0
	}
	return v
}

func (d *decoder) number(field string, paths ...string) float64 {
	r, ok := d.lookup(paths...)
	if !ok {
		return 0
	}
	return d.toNumber(field, r)
}

// integer rejects values outside [0, maxInteger].
func (d *decoder) integer(field string, paths ...string) int64 {
	r, ok := d.lookup(paths...)
	if !ok {
		return 0
	}
	v := d.toNumber(field, r)
	if v < 0 || v > maxInteger {
		d.fail(field, r)
		return 0
	}
	return int64(v)
}

// decimals is a uint8 on ERC20 tokens.
func (d *decoder) decimals(paths ...string) int {
	r, ok := d.lookup(paths...)
	if !ok {
		return 0
	}
	v := d.integer("token.decimals", paths...)
	if v > maxDecimals {
		d.fail("token.decimals", r)
		return 0
	}
	return int(v)
}

func (d *decoder) boolean(field string, paths ...string) bool {
	r, ok := d.lookup(paths...)
	if !ok {
		return false
	}
	switch r.Type {
	case gjson.True, gjson.False:
		return r.Bool()
	case gjson.Number:
		return r.Float() != 0
	case gjson.String:
		v, err := strconv.ParseBool(strings.TrimSpace(r.Str))
		if err != nil {
			d.fail(field, r)
		}
		return v
	default:
		d.fail(field, r)
		return false
	}
}

func (d *decoder) text(paths ...string) string {
	r, ok := d.lookup(paths...)
	if !ok {
		return ""
	}
	return r.String()
}

// flags accepts plain strings or objects carrying a description or flag name.
func (d *decoder) flags(paths ...string) []string {
	r, ok := d.lookup(paths...)
	if !ok {
		return []string{}
	}
	if !r.IsArray() {
		d.fail("flags", r)
		return []string{}
	}
	flags := []string{}
	for _, f := range r.Array() {
		switch {
		case f.Type == gjson.String:
			flags = append(flags, f.Str)
		case f.IsObject():
			text := f.Get("description").String()
			if text == "" {
				text = f.Get("flag").String()
			}
			if text == "" {
				text = UnknownFlag
			}
			flags = append(flags, text)
		default:
			d.fail("flags", f)
		}
	}
	return flags
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
