// Package scoring turns a honeypot report into a 0-100 safety score.
package scoring

import (
	"math"

	"github.com/gigglywizard/scanner-backend/types"
)

const (
	MaxScore = 100
	MinScore = 0

	HoneypotPenalty       = 70.0
	TaxFreeAllowance      = 5.0 // percent of buy or sell tax that costs nothing
	TaxPenaltyFactor      = 2.0
	MaxCreatorHoldings    = 20.0 // percent
	CreatorPenalty        = 20.0
	MinLiquidityUSD       = 50000.0
	LowLiquidityPenalty   = 20.0
	PenaltyPerFlag        = 5.0
	SafeScoreThreshold    = 80
	CautionScoreThreshold = 50
)

type Rating string

const (
	RatingSafe    Rating = "safe"
	RatingCaution Rating = "caution"
	RatingDanger  Rating = "danger"
)

// Score applies independent additive penalties to 100 and clamps the total.
// Fractional penalties are kept until the clamp and floored afterwards.
func Score(report *types.TokenReport) int {
	if report == nil {
		return MinScore
	}
	score := float64(MaxScore)

	if report.IsHoneypot {
		score -= HoneypotPenalty
	}
	if report.BuyTax > TaxFreeAllowance {
		score -= (report.BuyTax - TaxFreeAllowance) * TaxPenaltyFactor
	}
	if report.SellTax > TaxFreeAllowance {
		score -= (report.SellTax - TaxFreeAllowance) * TaxPenaltyFactor
	}
	if report.CreatorHoldings > MaxCreatorHoldings {
		score -= CreatorPenalty
	}
	// unknown liquidity is no evidence of safety
	if !report.Liquidity.Known || report.Liquidity.USD < MinLiquidityUSD {
		score -= LowLiquidityPenalty
	}
	score -= PenaltyPerFlag * float64(len(report.Flags))

	return int(math.Floor(math.Max(MinScore, math.Min(MaxScore, score))))
}

func RatingOf(score int) Rating {
	switch {
	case score >= SafeScoreThreshold:
		return RatingSafe
	case score >= CautionScoreThreshold:
		return RatingCaution
	default:
		return RatingDanger
	}
}
