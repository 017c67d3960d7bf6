package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

// Percent prints the shortest exact form of v with a percent suffix.
func Percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func USD(p *message.Printer, v float64) string {
	return "$" + p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3)))
}

func ETH(v float64) string {
	return fmt.Sprintf("%.2f ETH", v)
}

func Count(p *message.Printer, v int64) string {
	return p.Sprintf("%d", v)
}

// Supply scales a raw total supply by the token decimals. It returns "" when the
// supply is not a decimal number.
func Supply(p *message.Printer, raw string, decimals int) string {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	if decimals > 0 {
		d = d.Shift(int32(-decimals))
	}
	return p.Sprintf("%v", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
}

// DisplayAddress returns the EIP-55 form of a hex address and leaves anything
// else as typed.
func DisplayAddress(address string) string {
	if common.IsHexAddress(address) {
		return common.HexToAddress(address).Hex()
	}
	return address
}

// ShortAddress keeps the first 6 and last 4 characters.
func ShortAddress(address string) string {
	r := []rune(address)
	if len(r) <= 10 {
		return address
	}
	return string(r[:6]) + "..." + string(r[len(r)-4:])
}
