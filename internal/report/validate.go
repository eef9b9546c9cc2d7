package report

import (
	"fmt"

	"github.com/nao1215/reportgen/internal/model"
)

// Validation messages shared by all report types.
// The text is relayed to operators verbatim.
const (
	msgNilReportData    = "Report data object cannot be null"
	msgNilServices      = "Provided services cannot be null"
	msgEmptyServices    = "Provided services cannot be empty"
	msgRecordNilFmt     = "%s record cannot be null"
	msgRecordNameFmt    = "%s record must contain a name"
	msgRecordCityFmt    = "%s record must contain a city"
	msgRecordStateFmt   = "%s record must contain a state"
	msgRecordAddressFmt = "%s record must contain an address"
	msgRecordIDFmt      = "%s ID cannot be 0"
	msgBlankFieldFmt    = "%s for service date %s cannot be null or empty"
	msgZeroFieldFmt     = "%s for service date %s cannot be 0"
	msgNegativeFeeFmt   = "Fee for service date %s cannot be negative"
)

// identity is the subset of a member or provider record the validators check.
type identity struct {
	name    string
	address string
	city    string
	state   string
	number  int
}

// checkIdentity applies the record checks in their fixed order:
// name, city, state, address, then number. label is "Member" or "Provider".
func checkIdentity(label string, id identity) (string, bool) {
	switch {
	case model.IsBlank(id.name):
		return fmt.Sprintf(msgRecordNameFmt, label), false
	case model.IsBlank(id.city):
		return fmt.Sprintf(msgRecordCityFmt, label), false
	case model.IsBlank(id.state):
		return fmt.Sprintf(msgRecordStateFmt, label), false
	case model.IsBlank(id.address):
		return fmt.Sprintf(msgRecordAddressFmt, label), false
	case id.number == 0:
		// Negative numbers pass; only the zero value is known to be bogus.
		return fmt.Sprintf(msgRecordIDFmt, label), false
	}
	return "", true
}

// checkServicesPresent distinguishes an absent service list from an empty one.
func checkServicesPresent(services []model.ProvidedService) (string, bool) {
	if services == nil {
		return msgNilServices, false
	}
	if len(services) == 0 {
		return msgEmptyServices, false
	}
	return "", true
}

// serviceCheck inspects one provided service and returns a failure message.
type serviceCheck func(s model.ProvidedService) (string, bool)

// requireText fails when field(s) is blank.
func requireText(label string, field func(model.ProvidedService) string) serviceCheck {
	return func(s model.ProvidedService) (string, bool) {
		if model.IsBlank(field(s)) {
			return fmt.Sprintf(msgBlankFieldFmt, label, messageDate(s)), false
		}
		return "", true
	}
}

// requireNonZero fails when field(s) is zero.
func requireNonZero(label string, field func(model.ProvidedService) int) serviceCheck {
	return func(s model.ProvidedService) (string, bool) {
		if field(s) == 0 {
			return fmt.Sprintf(msgZeroFieldFmt, label, messageDate(s)), false
		}
		return "", true
	}
}

// requireNonNegativeFee fails when the service fee is below zero.
func requireNonNegativeFee(s model.ProvidedService) (string, bool) {
	if s.Fee < 0 {
		return fmt.Sprintf(msgNegativeFeeFmt, messageDate(s)), false
	}
	return "", true
}

// checkServices runs checks against every service in order.
// The first failing check of the first failing service wins.
func checkServices(services []model.ProvidedService, checks ...serviceCheck) (string, bool) {
	for _, s := range services {
		for _, check := range checks {
			if msg, ok := check(s); !ok {
				return msg, false
			}
		}
	}
	return "", true
}

// messageDate renders a service date for a validation message.
func messageDate(s model.ProvidedService) string {
	return s.ServiceDate.Format(messageDateLayout)
}

func providerName(s model.ProvidedService) string { return s.ProviderName }
func memberName(s model.ProvidedService) string   { return s.MemberName }
func serviceName(s model.ProvidedService) string  { return s.ServiceName }
func memberID(s model.ProvidedService) int        { return s.MemberID }

// ValidateMember checks data for the member report.
//
// Checks run in this order and the first failure wins: data present,
// member record present, name, city, state, address, member number,
// service list present, service list non-empty, then for each service its
// provider name and service name.
func ValidateMember(data *model.ReportData) model.ValidationResult {
	if data == nil {
		return model.Invalid(msgNilReportData)
	}
	if data.Member == nil {
		return model.Invalid(fmt.Sprintf(msgRecordNilFmt, "Member"))
	}

	m := data.Member
	if msg, ok := checkIdentity("Member", identity{
		name: m.Name, address: m.Address, city: m.City, state: m.State, number: m.Number,
	}); !ok {
		return model.Invalid(msg)
	}

	if msg, ok := checkServicesPresent(data.ProvidedServices); !ok {
		return model.Invalid(msg)
	}

	if msg, ok := checkServices(data.ProvidedServices,
		requireText("Provider name", providerName),
		requireText("Service name", serviceName),
	); !ok {
		return model.Invalid(msg)
	}

	return model.Valid()
}

// ValidateProvider checks data for the provider report.
//
// It mirrors ValidateMember over the provider record. Each service must
// name the member, carry a member number, name the service and have a
// non-negative fee, since all four appear in the provider's table and
// totals.
func ValidateProvider(data *model.ReportData) model.ValidationResult {
	if data == nil {
		return model.Invalid(msgNilReportData)
	}
	if data.Provider == nil {
		return model.Invalid(fmt.Sprintf(msgRecordNilFmt, "Provider"))
	}

	p := data.Provider
	if msg, ok := checkIdentity("Provider", identity{
		name: p.Name, address: p.Address, city: p.City, state: p.State, number: p.Number,
	}); !ok {
		return model.Invalid(msg)
	}

	if msg, ok := checkServicesPresent(data.ProvidedServices); !ok {
		return model.Invalid(msg)
	}

	if msg, ok := checkServices(data.ProvidedServices,
		requireText("Member name", memberName),
		requireNonZero("Member ID", memberID),
		requireText("Service name", serviceName),
		requireNonNegativeFee,
	); !ok {
		return model.Invalid(msg)
	}

	return model.Valid()
}

// ValidateSummary checks data for the weekly summary report.
// The summary has no subject record; it needs a non-empty service list
// in which every service names its provider and has a non-negative fee.
func ValidateSummary(data *model.ReportData) model.ValidationResult {
	if data == nil {
		return model.Invalid(msgNilReportData)
	}

	if msg, ok := checkServicesPresent(data.ProvidedServices); !ok {
		return model.Invalid(msg)
	}

	if msg, ok := checkServices(data.ProvidedServices,
		requireText("Provider name", providerName),
		requireNonNegativeFee,
	); !ok {
		return model.Invalid(msg)
	}

	return model.Valid()
}
