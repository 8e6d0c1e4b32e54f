package partner

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	t.Run("trims name and phone", func(t *testing.T) {
		s, err := NewSupplier("  Al Noor Trading ", " 0599000000 ")
		require.NoError(t, err)
		assert.Equal(t, "Al Noor Trading", s.Name)
		assert.Equal(t, "0599000000", s.Phone)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		_, err := NewSupplier("   ", "0599000000")
		assert.Error(t, err)
	})
}

func TestSupplier_MatchesRecipient(t *testing.T) {
	s, err := NewSupplier("Al Noor Trading", "")
	require.NoError(t, err)

	assert.True(t, s.MatchesRecipient("al noor trading"))
	assert.True(t, s.MatchesRecipient("  AL NOOR TRADING  "))
	assert.False(t, s.MatchesRecipient("Al Noor"))
}

func TestDocumentNumbers(t *testing.T) {
	assert.Equal(t, "INV-00001", FormatInvoiceNumber(1))
	assert.Equal(t, "INV-00042", FormatInvoiceNumber(42))
	assert.Equal(t, "PAY-00100", FormatPaymentNumber(100))
	assert.Equal(t, "PAY-123456", FormatPaymentNumber(123456))
}

func TestNewInvoice(t *testing.T) {
	supplier, err := NewSupplier("Al Noor Trading", "")
	require.NoError(t, err)

	t.Run("requires a positive amount", func(t *testing.T) {
		_, err := NewInvoice(supplier.ID, "INV-00001", decimal.Zero, "2026-03-01", "")
		assert.Error(t, err)
	})

	t.Run("creates a valid invoice", func(t *testing.T) {
		inv, err := NewInvoice(supplier.ID, "INV-00001", decimal.NewFromInt(500), "2026-03-01", "cement")
		require.NoError(t, err)
		assert.Equal(t, supplier.ID, inv.SupplierID)
	})
}

func TestTransactionConstructors(t *testing.T) {
	supplier, err := NewSupplier("Al Noor Trading", "")
	require.NoError(t, err)

	t.Run("invoice transaction falls back to the document number", func(t *testing.T) {
		inv, err := NewInvoice(supplier.ID, "INV-00007", decimal.NewFromInt(500), "2026-03-01", "")
		require.NoError(t, err)

		tx := NewInvoiceTransaction(inv)
		assert.Equal(t, TransactionTypeInvoice, tx.Type)
		assert.Equal(t, "Invoice INV-00007", tx.Description)
		require.NotNil(t, tx.InvoiceID)
		assert.Equal(t, inv.ID, *tx.InvoiceID)
		assert.Nil(t, tx.PaymentID)
	})

	t.Run("payment transaction keeps its notes", func(t *testing.T) {
		pay, err := NewSupplierPayment(supplier.ID, "PAY-00003", decimal.NewFromInt(200), "2026-03-02", "partial settlement")
		require.NoError(t, err)

		tx := NewPaymentTransaction(pay)
		assert.Equal(t, TransactionTypePayment, tx.Type)
		assert.Equal(t, "partial settlement", tx.Description)
		require.NotNil(t, tx.PaymentID)
		assert.Nil(t, tx.InvoiceID)
	})
}
