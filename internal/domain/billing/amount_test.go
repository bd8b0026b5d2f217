package billing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_JSONRoundTrip(t *testing.T) {
	items := []LineItem{
		{Description: "Consulting phase 1 (50%)", Qty: AmountFromFloat(2), Price: AmountFromFloat(100)},
		{Description: `Hébergement "premium"`, Qty: AmountFromFloat(1.5), Price: AmountFromFloat(33.33)},
	}

	data, err := json.Marshal(items)
	require.NoError(t, err)

	// amounts are bare numbers on the wire, not quoted strings
	assert.Contains(t, string(data), `"qty":2,`)
	assert.Contains(t, string(data), `"price":33.33`)

	var decoded []LineItem
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)

	for i := range items {
		assert.Equal(t, items[i].Description, decoded[i].Description)
		assert.True(t, items[i].Qty.Equal(decoded[i].Qty))
		assert.True(t, items[i].Price.Equal(decoded[i].Price))
	}
}

func TestAmount_UnmarshalQuoted(t *testing.T) {
	var a Amount
	require.NoError(t, json.Unmarshal([]byte(`"15.4"`), &a))
	assert.Equal(t, "15.4", a.String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &a))
	assert.True(t, a.IsZero())
}

func TestAmount_Arithmetic(t *testing.T) {
	subtotal := AmountFromFloat(200)
	vat := NewAmount(subtotal.Decimal.Mul(VATRate)).Round2()
	assert.Equal(t, "15.4", vat.String())

	sum := AmountFromFloat(0.1).Add(AmountFromFloat(0.2))
	assert.Equal(t, "0.3", sum.String())
}
