package upi

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

// BuildURI builds a upi://pay deep link for a collection request to the given
// payee VPA.
func BuildURI(payeeVPA, payeeName string, amount decimal.Decimal, note string) string {
	params := url.Values{}
	params.Set("pa", payeeVPA)
	params.Set("pn", payeeName)
	params.Set("am", amount.StringFixed(2))
	params.Set("cu", "INR")
	if note != "" {
		params.Set("tn", note)
	}
	return "upi://pay?" + params.Encode()
}

// Generate creates a QR code image for a UPI payment and returns the file name.
func Generate(payeeVPA, payeeName string, amount decimal.Decimal, note string) (string, error) {
	uri := BuildURI(payeeVPA, payeeName, amount, note)

	qrc, err := qrcode.New(uri)
	if err != nil {
		return "", fmt.Errorf("error creating QR code: %w", err)
	}

	// Generate a unique filename
	filename := fmt.Sprintf("upi_%d.jpg", time.Now().UnixNano())
	fileWriter, err := standard.New(filename)
	if err != nil {
		return "", fmt.Errorf("error creating file writer: %w", err)
	}

	if err = qrc.Save(fileWriter); err != nil {
		os.Remove(filename) // Clean up on error
		return "", fmt.Errorf("error saving QR code: %w", err)
	}

	return filename, nil
}

// Remove deletes the QR code file
func Remove(filename string) error {
	return os.Remove(filename)
}
