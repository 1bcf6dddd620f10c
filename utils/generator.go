package utils

import (
	"math/rand"
	"time"

	"github.com/musicplanet/server/models"
	"gorm.io/gorm"
)

const receiptCodeLength = 10
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateReceiptCode returns a receipt code that is unique across the
// payments ledger.
func GenerateReceiptCode(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, receiptCodeLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := string(b)

		var payment models.Payment
		err := tx.Where("receipt_code = ?", code).First(&payment).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
