// Package report implements the read-only aggregation passes and sheet
// assembly behind the monthly period report. Everything here is pure: inputs
// are already-fetched, window-filtered snapshots and nothing is mutated.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/iho/studioops/internal/domain"
)

// Bucket names for bookings with missing grouping fields.
const (
	UnassignedBucket    = "Unassigned"
	UncategorizedBucket = "Uncategorized"
)

// PriceIndex maps package names to their parsed prices.
type PriceIndex map[string]decimal.Decimal

// BuildPriceIndex parses every package's price field. Packages whose price
// cannot be parsed are indexed at zero so aggregation can proceed; the caller
// is expected to surface them for audit via Unparsed.
func BuildPriceIndex(packages []*domain.ServicePackage) PriceIndex {
	index := make(PriceIndex, len(packages))
	for _, pkg := range packages {
		price, err := pkg.ParsePrice()
		if err != nil {
			index[pkg.Name] = decimal.Zero
			continue
		}
		index[pkg.Name] = price
	}
	return index
}

// Price looks up a package price. A name missing from the index contributes
// zero revenue, never an error.
func (idx PriceIndex) Price(name string) (decimal.Decimal, bool) {
	price, ok := idx[name]
	if !ok {
		return decimal.Zero, false
	}
	return price, true
}

// MissingPackages returns booking package names with no price record, for
// audit logging by the caller.
func MissingPackages(bookings []*domain.Booking, index PriceIndex) []string {
	seen := make(map[string]bool)
	var missing []string
	for _, b := range bookings {
		if b.PackageName == "" || seen[b.PackageName] {
			continue
		}
		if _, ok := index[b.PackageName]; !ok {
			missing = append(missing, b.PackageName)
		}
		seen[b.PackageName] = true
	}
	return missing
}

// PackageStat is one row of the package analytics view.
type PackageStat struct {
	Name    string
	Count   int
	Revenue decimal.Decimal
}

// AggregateByPackage groups bookings by package name. Every reference package
// is emitted even with zero matching bookings; package names observed on
// bookings but absent from the reference collection follow, in first-occurrence
// order, with zero revenue.
func AggregateByPackage(bookings []*domain.Booking, packages []*domain.ServicePackage) []PackageStat {
	index := BuildPriceIndex(packages)

	counts := make(map[string]int)
	for _, b := range bookings {
		counts[b.PackageName]++
	}

	stats := make([]PackageStat, 0, len(packages))
	emitted := make(map[string]bool, len(packages))
	for _, pkg := range packages {
		if emitted[pkg.Name] {
			continue
		}
		emitted[pkg.Name] = true
		price, _ := index.Price(pkg.Name)
		count := counts[pkg.Name]
		stats = append(stats, PackageStat{
			Name:    pkg.Name,
			Count:   count,
			Revenue: price.Mul(decimal.NewFromInt(int64(count))),
		})
	}

	for _, b := range bookings {
		if b.PackageName == "" || emitted[b.PackageName] {
			continue
		}
		emitted[b.PackageName] = true
		stats = append(stats, PackageStat{
			Name:    b.PackageName,
			Count:   counts[b.PackageName],
			Revenue: decimal.Zero,
		})
	}

	return stats
}

// StaffStat is one row of the staff performance view.
type StaffStat struct {
	Name    string
	Count   int
	Revenue decimal.Decimal
}

// AggregateByStaff credits every assigned staff member one assignment per
// booking plus an equal split of the booking's package price. A booking with
// no assigned staff lands in the Unassigned bucket with a zero revenue share.
// Output follows first-occurrence order; display sorting is the assembly's job.
func AggregateByStaff(bookings []*domain.Booking, packages []*domain.ServicePackage) []StaffStat {
	index := BuildPriceIndex(packages)

	var order []string
	totals := make(map[string]*StaffStat)

	credit := func(name string, revenue decimal.Decimal) {
		stat, ok := totals[name]
		if !ok {
			stat = &StaffStat{Name: name, Revenue: decimal.Zero}
			totals[name] = stat
			order = append(order, name)
		}
		stat.Count++
		stat.Revenue = stat.Revenue.Add(revenue)
	}

	for _, b := range bookings {
		if len(b.AssignedStaff) == 0 {
			credit(UnassignedBucket, decimal.Zero)
			continue
		}
		price, _ := index.Price(b.PackageName)
		share := price.Div(decimal.NewFromInt(int64(len(b.AssignedStaff))))
		for _, name := range b.AssignedStaff {
			credit(name, share)
		}
	}

	stats := make([]StaffStat, 0, len(order))
	for _, name := range order {
		stats = append(stats, *totals[name])
	}
	return stats
}

// CategoryStat is one row of the event category breakdown.
type CategoryStat struct {
	Name  string
	Count int
}

// AggregateByCategory groups bookings by event type. Missing or empty event
// types land in the Uncategorized bucket.
func AggregateByCategory(bookings []*domain.Booking) []CategoryStat {
	var order []string
	counts := make(map[string]int)

	for _, b := range bookings {
		name := b.EventType
		if name == "" {
			name = UncategorizedBucket
		}
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name]++
	}

	stats := make([]CategoryStat, 0, len(order))
	for _, name := range order {
		stats = append(stats, CategoryStat{Name: name, Count: counts[name]})
	}
	return stats
}

// TotalDeclaredIncome sums the parsed package price over all bookings. This
// is the declared revenue estimate for the window, independent of any
// reconciled financial entry.
func TotalDeclaredIncome(bookings []*domain.Booking, packages []*domain.ServicePackage) decimal.Decimal {
	index := BuildPriceIndex(packages)

	total := decimal.Zero
	for _, b := range bookings {
		price, _ := index.Price(b.PackageName)
		total = total.Add(price)
	}
	return total
}
