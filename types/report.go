// Package types
package types

// TokenInfo is the token block of a honeypot report.
type TokenInfo struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    int    `json:"decimals"`
	TotalSupply string `json:"totalSupply"`
}

type Liquidity struct {
	USD float64 `json:"usd"`
	ETH float64 `json:"eth"`
	// Known is false when the upstream response carried no liquidity figure.
	Known bool `json:"known"`
}

// TokenReport is the risk data returned by the honeypot API for one address.
type TokenReport struct {
	Token           *TokenInfo `json:"token,omitempty"`
	IsHoneypot      bool       `json:"isHoneypot"`
	BuyTax          float64    `json:"buyTax"`
	SellTax         float64    `json:"sellTax"`
	BuyGas          int64      `json:"buyGas"`
	SellGas         int64      `json:"sellGas"`
	Holders         int64      `json:"holders"`
	Liquidity       Liquidity  `json:"liquidity"`
	CreatorHoldings float64    `json:"creatorHoldings"`
	Flags           []string   `json:"flags"`
}

// TokenName falls back to a placeholder when the API did not identify the token.
func (r *TokenReport) TokenName() string {
	if r.Token == nil || r.Token.Name == "" {
		return "Unknown Token"
	}
	return r.Token.Name
}

func (r *TokenReport) TokenSymbol() string {
	if r.Token == nil {
		return ""
	}
	return r.Token.Symbol
}
