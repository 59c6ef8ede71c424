package mosquitonets

import (
	"testing"

	"stolarija-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestItemPrice(t *testing.T) {
	product := &models.MosquitoNetProduct{PricePerM2: 40, MinimumPrice: 25}

	// 120x150 cm = 1.8 m2 -> 72.00 po komadu
	assert.Equal(t, 72.0, ItemPrice(120, 150, 1, product))
	assert.Equal(t, 144.0, ItemPrice(120, 150, 2, product))
}

func TestItemPriceMinimum(t *testing.T) {
	product := &models.MosquitoNetProduct{PricePerM2: 40, MinimumPrice: 25}

	// 50x50 cm = 0.25 m2 -> 10.00, ispod minimuma pa se naplaćuje 25.00
	assert.Equal(t, 25.0, ItemPrice(50, 50, 1, product))
	assert.Equal(t, 75.0, ItemPrice(50, 50, 3, product))
}
