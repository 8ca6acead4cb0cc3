package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDebtLineBalance(t *testing.T) {
	line := DebtLine{
		Amount:    decimal.NewFromInt(100),
		LateFee:   decimal.NewFromInt(20),
		TotalPaid: decimal.NewFromInt(50),
	}
	assert.True(t, decimal.NewFromInt(70).Equal(line.Balance()), "balance should be monto + mora - totalPagado")
	assert.True(t, line.Outstanding())

	line.TotalPaid = decimal.NewFromInt(120)
	assert.True(t, line.Balance().IsZero(), "fully paid line should have zero balance")
	assert.False(t, line.Outstanding())

	// Overpayment never produces a negative balance
	line.TotalPaid = decimal.NewFromInt(150)
	assert.True(t, line.Balance().IsZero(), "overpaid line clamps to zero")
	assert.False(t, line.Outstanding())
}

// TestDebtLineAllocationRoundTrip walks a line through two allocations: a partial
// payment leaves it pending, paying exactly the remaining balance settles it, and
// one cent more than the balance fails the check every allocation path applies.
func TestDebtLineAllocationRoundTrip(t *testing.T) {
	line := DebtLine{
		Amount:  decimal.RequireFromString("200.00"),
		LateFee: decimal.RequireFromString("15.50"),
		Active:  true,
	}
	assert.True(t, decimal.RequireFromString("215.50").Equal(line.Balance()))

	// Partial payment: balance drops, line stays pending
	line.TotalPaid, line.Settled = line.AfterAllocation(decimal.RequireFromString("100.00"))
	assert.True(t, decimal.RequireFromString("115.50").Equal(line.Balance()))
	assert.False(t, line.Settled)
	assert.True(t, line.Outstanding())

	// One cent over the remaining balance fails the allocation check
	overpay := decimal.RequireFromString("115.51")
	assert.True(t, overpay.GreaterThan(line.Balance()))

	// Paying exactly the remaining balance settles the line
	line.TotalPaid, line.Settled = line.AfterAllocation(decimal.RequireFromString("115.50"))
	assert.True(t, line.Settled)
	assert.True(t, line.Balance().IsZero())
	assert.False(t, line.Outstanding())

	// A settled line accepts nothing: even one cent exceeds its zero balance
	assert.True(t, decimal.RequireFromString("0.01").GreaterThan(line.Balance()))
}

func TestDebtLineAfterAllocationPartial(t *testing.T) {
	line := DebtLine{
		Amount:    decimal.NewFromInt(100),
		TotalPaid: decimal.NewFromInt(30),
	}
	paid, settled := line.AfterAllocation(decimal.NewFromInt(40))
	assert.True(t, decimal.NewFromInt(70).Equal(paid))
	assert.False(t, settled)
}

func TestDebtLineBalanceZeroAmounts(t *testing.T) {
	var line DebtLine
	assert.True(t, line.Balance().IsZero())
	assert.False(t, line.Outstanding())
}

func TestDocumentTypeFor(t *testing.T) {
	assert.Equal(t, IncomeReceiptDoc, DocumentTypeFor(Income))
	assert.Equal(t, ExpenseReceiptDoc, DocumentTypeFor(Expense))
}
