package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDetails() InvoiceDetails {
	issue, _ := time.Parse(DateLayout, "2024-01-01")
	due, _ := time.Parse(DateLayout, "2024-01-31")
	return InvoiceDetails{
		ClientID:   uuid.New(),
		ClientName: "C SA",
		IssueDate:  issue,
		DueDate:    due,
		Items: []LineItem{
			{Description: "Consulting", Qty: AmountFromFloat(2), Price: AmountFromFloat(100)},
		},
	}
}

func TestNewInvoice(t *testing.T) {
	t.Run("computes totals from line items", func(t *testing.T) {
		inv, err := NewInvoice(uuid.New(), testDetails())
		require.NoError(t, err)

		assert.Equal(t, "200", inv.Subtotal.String())
		assert.Equal(t, "15.4", inv.VATAmount.String())
		// VAT is disclosed, not added: total equals subtotal
		assert.Equal(t, "200", inv.Total.String())
		assert.Equal(t, StatusPending, inv.Status)
		assert.Empty(t, inv.Number)
	})

	t.Run("sums multiple line items", func(t *testing.T) {
		details := testDetails()
		details.Items = []LineItem{
			{Description: "Svc", Qty: AmountFromFloat(1), Price: AmountFromFloat(200)},
			{Description: "Extra", Qty: AmountFromFloat(3), Price: AmountFromFloat(33.5)},
		}
		inv, err := NewInvoice(uuid.New(), details)
		require.NoError(t, err)

		assert.Equal(t, "300.5", inv.Subtotal.String())
		assert.Equal(t, "23.14", inv.VATAmount.String())
	})

	t.Run("rejects missing client", func(t *testing.T) {
		details := testDetails()
		details.ClientID = uuid.Nil
		_, err := NewInvoice(uuid.New(), details)
		assert.Error(t, err)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		details := testDetails()
		details.Items = nil
		_, err := NewInvoice(uuid.New(), details)
		assert.Error(t, err)
	})

	t.Run("rejects missing dates", func(t *testing.T) {
		details := testDetails()
		details.DueDate = time.Time{}
		_, err := NewInvoice(uuid.New(), details)
		assert.Error(t, err)
	})

	t.Run("rejects status outside the closed enum", func(t *testing.T) {
		details := testDetails()
		details.Status = "brouillon"
		_, err := NewInvoice(uuid.New(), details)
		assert.Error(t, err)
	})

	t.Run("accepts explicit valid status", func(t *testing.T) {
		details := testDetails()
		details.Status = StatusPaid
		inv, err := NewInvoice(uuid.New(), details)
		require.NoError(t, err)
		assert.Equal(t, StatusPaid, inv.Status)
	})
}

func TestInvoice_AssignNumber(t *testing.T) {
	inv, err := NewInvoice(uuid.New(), testDetails())
	require.NoError(t, err)

	require.NoError(t, inv.AssignNumber("FAC-0001"))
	assert.Equal(t, "FAC-0001", inv.Number)

	assert.Error(t, inv.AssignNumber("FAC-0002"))
	assert.Equal(t, "FAC-0001", inv.Number)
}

func TestInvoice_Update(t *testing.T) {
	inv, err := NewInvoice(uuid.New(), testDetails())
	require.NoError(t, err)

	details := testDetails()
	details.Status = StatusPaid
	details.Items = []LineItem{
		{Description: "Révision", Qty: AmountFromFloat(1), Price: AmountFromFloat(50)},
	}
	require.NoError(t, inv.Update(details))

	assert.Equal(t, StatusPaid, inv.Status)
	assert.Equal(t, "50", inv.Subtotal.String())
	assert.Equal(t, "3.85", inv.VATAmount.String())
	assert.Equal(t, 2, inv.Version)

	t.Run("empty status keeps current", func(t *testing.T) {
		details := testDetails()
		require.NoError(t, inv.Update(details))
		assert.Equal(t, StatusPaid, inv.Status)
	})

	t.Run("any valid status may be written, no transition graph", func(t *testing.T) {
		details := testDetails()
		details.Status = StatusOverdue
		require.NoError(t, inv.Update(details))
		details.Status = StatusPending
		require.NoError(t, inv.Update(details))
	})
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "FAC-0001", FormatNumber(1))
	assert.Equal(t, "FAC-0042", FormatNumber(42))
	assert.Equal(t, "FAC-10000", FormatNumber(10000))
}

func TestStatusLabelFR(t *testing.T) {
	assert.Equal(t, "payée", StatusLabelFR(StatusPaid))
	assert.Equal(t, "en attente", StatusLabelFR(StatusPending))
	assert.Equal(t, "en retard", StatusLabelFR(StatusOverdue))
}

func TestInvoice_IsPastDue(t *testing.T) {
	inv, err := NewInvoice(uuid.New(), testDetails())
	require.NoError(t, err)

	after, _ := time.Parse(DateLayout, "2024-02-15")
	before, _ := time.Parse(DateLayout, "2024-01-15")
	assert.True(t, inv.IsPastDue(after))
	assert.False(t, inv.IsPastDue(before))
}
