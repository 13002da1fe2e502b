package domain

import "github.com/shopspring/decimal"

// ReconcileCommissions synchronizes a saved commission line set with an
// entity's current assigned-staff set. Staff who remain assigned keep their
// saved amount, newly assigned staff get a zero line, and lines for staff no
// longer assigned are dropped. A dropped amount is not redistributed; the
// balance check surfaces the resulting gap to the operator.
//
// Output order follows assignedStaff order. The function is idempotent:
// feeding its output back in with the same staff set yields the same result.
func ReconcileCommissions(assignedStaff []string, saved []CommissionLine) []CommissionLine {
	byName := make(map[string]decimal.Decimal, len(saved))
	for _, line := range saved {
		if _, ok := byName[line.StaffName]; !ok {
			byName[line.StaffName] = line.Amount
		}
	}

	lines := make([]CommissionLine, 0, len(assignedStaff))
	for _, name := range assignedStaff {
		line := CommissionLine{StaffName: name}
		if amount, ok := byName[name]; ok {
			line.Amount = amount
		}
		lines = append(lines, line)
	}
	return lines
}

// PruneZeroCommissions drops zero-amount lines before persistence. Zero lines
// are fine to hold in memory while editing; they are never stored.
func PruneZeroCommissions(lines []CommissionLine) []CommissionLine {
	pruned := make([]CommissionLine, 0, len(lines))
	for _, line := range lines {
		if line.Amount.IsZero() {
			continue
		}
		pruned = append(pruned, line)
	}
	return pruned
}
