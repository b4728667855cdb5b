package wire

import (
	"strings"

	"abicodec/numeric"

	"github.com/pkg/errors"
)

const assetAmountSize = 8

// WriteAsset parses the textual form "<amount> <ticker>" and writes
// the amount as an 8-byte signed integer followed by the symbol. The
// fractional digit count of the amount becomes the symbol's precision.
func (b *Buffer) WriteAsset(text string) error {
	s := strings.TrimSpace(text)
	amount := ""
	pos := 0
	if pos < len(s) && s[pos] == '-' {
		amount += "-"
		pos++
	}
	foundDigit := false
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		foundDigit = true
		amount += string(s[pos])
		pos++
	}
	if !foundDigit {
		return errors.Wrapf(ErrMalformedAsset, "asset %q must begin with a number", text)
	}
	var precision uint8
	if pos < len(s) && s[pos] == '.' {
		pos++
		for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
			amount += string(s[pos])
			precision++
			pos++
		}
	}
	code := strings.TrimSpace(s[pos:])
	bin, err := numeric.SignedDecimalToBinary(assetAmountSize, amount)
	if err != nil {
		return err
	}
	b.Write(bin)
	b.WriteSymbol(Symbol{Code: code, Precision: precision})
	return nil
}

// ReadAsset reverses WriteAsset, reinserting the decimal point
// precision digits from the end of the amount.
func (b *Buffer) ReadAsset() (string, error) {
	view, err := b.ReadBytes(assetAmountSize)
	if err != nil {
		return "", err
	}
	sym, err := b.ReadSymbol()
	if err != nil {
		return "", err
	}
	amount := numeric.SignedBinaryToDecimal(view, int(sym.Precision)+1)
	if sym.Precision > 0 {
		split := len(amount) - int(sym.Precision)
		amount = amount[:split] + "." + amount[split:]
	}
	return amount + " " + sym.Code, nil
}
