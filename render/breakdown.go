// Package render maps a token report and its score to the blocks shown to the user.
package render

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gigglywizard/scanner-backend/scoring"
	"github.com/gigglywizard/scanner-backend/types"
)

const DefaultExplorerURL = "https://etherscan.io"

type Tone string

const (
	ToneNeutral Tone = ""
	ToneOK      Tone = "ok"
	ToneDanger  Tone = "danger"
)

type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Tone  Tone   `json:"tone,omitempty"`
}

type Block struct {
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

type Breakdown struct {
	TokenName string `json:"tokenName"`
	Symbol    string `json:"symbol"`

	Score     int            `json:"score"`
	ScoreText string         `json:"scoreText"`
	Rating    scoring.Rating `json:"rating"`

	Address        string `json:"address"`
	DisplayAddress string `json:"displayAddress"`
	ShortAddress   string `json:"shortAddress"`
	ExplorerURL    string `json:"explorerUrl"`

	Security  Block `json:"security"`
	Liquidity Block `json:"liquidity"`
	Metrics   Block `json:"metrics"`

	Flags     []string `json:"flags"`
	ShowFlags bool     `json:"showFlags"`
}

type Renderer struct {
	explorerURL string
}

func New(explorerURL string) *Renderer {
	explorerURL = strings.TrimRight(explorerURL, "/")
	if explorerURL == "" {
		explorerURL = DefaultExplorerURL
	}
	return &Renderer{explorerURL: explorerURL}
}

// TokenURL links the address on the block explorer.
func (r *Renderer) TokenURL(address string) string {
	return r.explorerURL + "/token/" + url.PathEscape(address)
}

func (r *Renderer) Render(address string, report *types.TokenReport) Breakdown {
	p := newPrinter()
	address = strings.TrimSpace(address)
	display := DisplayAddress(address)
	score := scoring.Score(report)

	b := Breakdown{
		TokenName:      report.TokenName(),
		Symbol:         report.TokenSymbol(),
		Score:          score,
		ScoreText:      strconv.Itoa(score) + "/100",
		Rating:         scoring.RatingOf(score),
		Address:        address,
		DisplayAddress: display,
		ShortAddress:   ShortAddress(display),
		ExplorerURL:    r.TokenURL(address),
		Flags:          report.Flags,
		ShowFlags:      len(report.Flags) > 0,
	}
	if b.Flags == nil {
		b.Flags = []string{}
	}

	honeypot := Row{Label: "Honeypot", Value: "✅ No", Tone: ToneOK}
	if report.IsHoneypot {
		honeypot = Row{Label: "Honeypot", Value: "⚠️ Yes", Tone: ToneDanger}
	}
	b.Security = Block{
		Title: "Security",
		Rows: []Row{
			honeypot,
			{Label: "Buy Tax", Value: Percent(report.BuyTax)},
			{Label: "Sell Tax", Value: Percent(report.SellTax)},
		},
	}

	usd, eth := "Unknown", "Unknown"
	if report.Liquidity.Known {
		usd = USD(p, report.Liquidity.USD)
		eth = ETH(report.Liquidity.ETH)
	}
	b.Liquidity = Block{
		Title: "Liquidity",
		Rows: []Row{
			{Label: "USD Value", Value: usd},
			{Label: "ETH Value", Value: eth},
			{Label: "Creator Holdings", Value: Percent(report.CreatorHoldings)},
		},
	}

	metrics := []Row{
		{Label: "Holders", Value: Count(p, report.Holders)},
		{Label: "Buy Gas", Value: Count(p, report.BuyGas)},
		{Label: "Sell Gas", Value: Count(p, report.SellGas)},
	}
	if report.Token != nil {
		if supply := Supply(p, report.Token.TotalSupply, report.Token.Decimals); supply != "" {
			metrics = append(metrics, Row{Label: "Total Supply", Value: supply})
		}
	}
	b.Metrics = Block{Title: "Metrics", Rows: metrics}

	return b
}

// Blocks lists the detail blocks in display order.
func (b Breakdown) Blocks() []Block {
	return []Block{b.Security, b.Liquidity, b.Metrics}
}
