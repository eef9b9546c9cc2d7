package database

import (
	"time"

	"github.com/nao1215/reportgen/internal/model"
)

var (
	day1 = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	day2 = time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	day3 = time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
)

// sampleFixture returns two members, one provider and three services.
// Member 8 has no services; the day3 service falls outside early March.
func sampleFixture() *Fixture {
	return &Fixture{
		Members: []model.MemberRecord{
			{Name: "Alex Burbank", Address: "1111", City: "Blah", State: "OR", Number: 7, Zip: 1111},
			{Name: "Sam Idle", Address: "2 Elm", City: "Salem", State: "OR", Number: 8, Zip: 97301},
		},
		Providers: []model.ProviderRecord{
			{Name: "John Smith", Address: "42 Main St", City: "Portland", State: "OR", Number: 100, Zip: 97201},
		},
		Services: []model.ProvidedService{
			{ProviderID: 100, MemberID: 7, ServiceID: 2, ServiceName: "BB", ServiceDate: day2, DateTimeReceived: day2.Add(time.Hour), Fee: 20},
			{ProviderID: 100, MemberID: 7, ServiceID: 1, ServiceName: "AA", ServiceDate: day1, DateTimeReceived: day1.Add(time.Hour), Fee: 10.5},
			{ProviderID: 100, MemberID: 7, ServiceID: 3, ServiceName: "CC", ServiceDate: day3, DateTimeReceived: day3.Add(time.Hour), Fee: 30},
		},
	}
}
