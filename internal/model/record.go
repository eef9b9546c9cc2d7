package model

import (
	"strings"
	"time"
)

// MemberRecord identifies a member who received services.
type MemberRecord struct {
	// Name is the member's full name. It also names the report file.
	Name string `yaml:"name"`

	// Address is the street address.
	Address string `yaml:"address"`

	// City is the city of the street address.
	City string `yaml:"city"`

	// State is the two-letter state code.
	State string `yaml:"state"`

	// Number is the member number. Zero is never a valid member number.
	Number int `yaml:"number"`

	// Zip is the postal code.
	Zip int `yaml:"zip"`
}

// ProviderRecord identifies a provider who rendered services.
// It has the same shape as MemberRecord but a distinct type so the two
// cannot be confused when assembling ReportData.
type ProviderRecord struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	City    string `yaml:"city"`
	State   string `yaml:"state"`
	Number  int    `yaml:"number"`
	Zip     int    `yaml:"zip"`
}

// ProvidedService is one billable encounter between a provider and a member.
type ProvidedService struct {
	// ProviderName is the name of the provider who rendered the service.
	ProviderName string `yaml:"provider_name"`

	// ProviderID is the provider number. Used to group summary lines.
	ProviderID int `yaml:"provider_id"`

	// MemberName is the name of the member who received the service.
	MemberName string `yaml:"member_name"`

	// MemberID is the member number.
	MemberID int `yaml:"member_id"`

	// ServiceID is the six-digit service code.
	ServiceID int `yaml:"service_id"`

	// ServiceName is the human-readable name of the service code.
	ServiceName string `yaml:"service_name"`

	// ServiceDate is the calendar date the service was provided.
	ServiceDate time.Time `yaml:"service_date"`

	// DateTimeReceived is when the record reached the processing center.
	DateTimeReceived time.Time `yaml:"date_time_received"`

	// Fee is the amount billed for the service. Never negative.
	Fee float64 `yaml:"fee"`
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
