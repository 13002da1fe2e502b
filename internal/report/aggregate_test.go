package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/studioops/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func booking(pkg string, staff ...string) *domain.Booking {
	return &domain.Booking{PackageName: pkg, AssignedStaff: staff}
}

func TestAggregateByPackage(t *testing.T) {
	packages := []*domain.ServicePackage{
		{Name: "Gold", Price: "Rs. 50,000"},
		{Name: "Silver", Price: "Rs. 30,000"},
	}
	bookings := []*domain.Booking{
		booking("Gold"),
		booking("Gold"),
	}

	stats := AggregateByPackage(bookings, packages)

	if len(stats) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(stats))
	}
	if stats[0].Name != "Gold" || stats[0].Count != 2 || !stats[0].Revenue.Equal(dec("100000")) {
		t.Errorf("Gold row = %+v, want count 2 revenue 100000", stats[0])
	}
	if stats[1].Name != "Silver" || stats[1].Count != 0 || !stats[1].Revenue.IsZero() {
		t.Errorf("Silver row = %+v, want zero count and revenue", stats[1])
	}
}

func TestAggregateByPackage_UnknownPackageName(t *testing.T) {
	packages := []*domain.ServicePackage{{Name: "Gold", Price: "50,000"}}
	bookings := []*domain.Booking{booking("Custom Shoot")}

	stats := AggregateByPackage(bookings, packages)

	if len(stats) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(stats))
	}
	if stats[1].Name != "Custom Shoot" || stats[1].Count != 1 || !stats[1].Revenue.IsZero() {
		t.Errorf("unknown package row = %+v, want count 1 revenue 0", stats[1])
	}
}

func TestAggregateByStaff_EqualSplit(t *testing.T) {
	packages := []*domain.ServicePackage{{Name: "Event", Price: "300"}}
	bookings := []*domain.Booking{booking("Event", "A", "B", "C")}

	stats := AggregateByStaff(bookings, packages)

	if len(stats) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(stats))
	}
	for _, s := range stats {
		if s.Count != 1 {
			t.Errorf("staff %s count = %d, want 1", s.Name, s.Count)
		}
		if !s.Revenue.Equal(dec("100")) {
			t.Errorf("staff %s revenue = %s, want 100", s.Name, s.Revenue)
		}
	}
}

func TestAggregateByStaff_UnassignedBucket(t *testing.T) {
	packages := []*domain.ServicePackage{{Name: "Event", Price: "900"}}
	bookings := []*domain.Booking{
		booking("Event"),
		booking("Event", "A"),
	}

	stats := AggregateByStaff(bookings, packages)

	if len(stats) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(stats))
	}
	if stats[0].Name != UnassignedBucket || stats[0].Count != 1 || !stats[0].Revenue.IsZero() {
		t.Errorf("unassigned row = %+v, want count 1 revenue 0", stats[0])
	}
	if stats[1].Name != "A" || !stats[1].Revenue.Equal(dec("900")) {
		t.Errorf("A row = %+v, want revenue 900", stats[1])
	}
}

func TestAggregateByStaff_AccumulatesAcrossBookings(t *testing.T) {
	packages := []*domain.ServicePackage{{Name: "Event", Price: "600"}}
	bookings := []*domain.Booking{
		booking("Event", "A", "B"),
		booking("Event", "A"),
	}

	stats := AggregateByStaff(bookings, packages)

	if stats[0].Name != "A" || stats[0].Count != 2 || !stats[0].Revenue.Equal(dec("900")) {
		t.Errorf("A row = %+v, want count 2 revenue 900", stats[0])
	}
	if stats[1].Name != "B" || stats[1].Count != 1 || !stats[1].Revenue.Equal(dec("300")) {
		t.Errorf("B row = %+v, want count 1 revenue 300", stats[1])
	}
}

func TestAggregateByCategory(t *testing.T) {
	bookings := []*domain.Booking{
		{EventType: "Wedding"},
		{EventType: ""},
		{EventType: "Wedding"},
		{EventType: "Birthday"},
	}

	stats := AggregateByCategory(bookings)

	want := map[string]int{"Wedding": 2, UncategorizedBucket: 1, "Birthday": 1}
	if len(stats) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(stats))
	}
	for _, s := range stats {
		if want[s.Name] != s.Count {
			t.Errorf("category %s count = %d, want %d", s.Name, s.Count, want[s.Name])
		}
	}
}

func TestTotalDeclaredIncome(t *testing.T) {
	packages := []*domain.ServicePackage{
		{Name: "Gold", Price: "Rs. 50,000"},
		{Name: "Silver", Price: "Rs. 30,000"},
	}
	bookings := []*domain.Booking{
		booking("Gold"),
		booking("Silver"),
		booking("Gold"),
		booking("Unknown"), // no price record, contributes zero
	}

	total := TotalDeclaredIncome(bookings, packages)
	if !total.Equal(dec("130000")) {
		t.Errorf("total = %s, want 130000", total)
	}
}

func TestMissingPackages(t *testing.T) {
	index := BuildPriceIndex([]*domain.ServicePackage{{Name: "Gold", Price: "50,000"}})
	bookings := []*domain.Booking{
		booking("Gold"),
		booking("Mystery"),
		booking("Mystery"),
	}

	missing := MissingPackages(bookings, index)
	if len(missing) != 1 || missing[0] != "Mystery" {
		t.Errorf("missing = %v, want [Mystery]", missing)
	}
}

func TestBuildPriceIndex_UnparsablePrice(t *testing.T) {
	index := BuildPriceIndex([]*domain.ServicePackage{{Name: "Bespoke", Price: "contact us"}})

	price, ok := index.Price("Bespoke")
	if !ok {
		t.Fatal("expected Bespoke to be indexed")
	}
	if !price.IsZero() {
		t.Errorf("price = %s, want 0", price)
	}
}
