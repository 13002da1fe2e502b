package domain

import "github.com/shopspring/decimal"

// BalanceResult is the outcome of checking a breakdown against its declared
// revenue amount. An unbalanced result is a normal editing state, not an
// error; callers gate persistence on IsBalanced.
type BalanceResult struct {
	TotalAllocated decimal.Decimal
	Difference     decimal.Decimal
	IsBalanced     bool
}

// CheckBalance verifies the balanced-ledger rule: the sum of all category
// amounts plus all commission line amounts must equal the declared revenue
// amount exactly. Difference is declared minus allocated, so a positive value
// means under-allocated.
func CheckBalance(declared decimal.Decimal, categories []decimal.Decimal, lines []CommissionLine) BalanceResult {
	total := decimal.Zero
	for _, amount := range categories {
		total = total.Add(amount)
	}
	for _, line := range lines {
		total = total.Add(line.Amount)
	}

	difference := declared.Sub(total)

	return BalanceResult{
		TotalAllocated: total,
		Difference:     difference,
		IsBalanced:     difference.IsZero(),
	}
}

// CheckEntry runs CheckBalance over a ledger entry's own categories and lines.
func CheckEntry(e LedgerEntry) BalanceResult {
	categories := e.CategoryAmounts()
	amounts := make([]decimal.Decimal, len(categories))
	for i, c := range categories {
		amounts[i] = c.Amount
	}
	return CheckBalance(e.DeclaredAmount(), amounts, e.Commissions())
}

// UnbalancedError carries the numeric difference of a rejected save so the
// operator can correct the figures. It matches ErrUnbalancedEntry under
// errors.Is.
type UnbalancedError struct {
	Result BalanceResult
}

func (e *UnbalancedError) Error() string {
	return "breakdown does not balance: difference " + e.Result.Difference.String()
}

func (e *UnbalancedError) Is(target error) bool {
	return target == ErrUnbalancedEntry
}
