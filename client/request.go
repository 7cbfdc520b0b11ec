package client

import (
	"slices"

	"github.com/tiaguinho/gosoap"
)

// Switch values understood by the description service. A switch that is
// absent from the request is treated as off by the service.
const (
	SwitchShowAvailableEquipment              = "ShowAvailableEquipment"
	SwitchShowExtendedDescriptions            = "ShowExtendedDescriptions"
	SwitchShowExtendedTechnicalSpecifications = "ShowExtendedTechnicalSpecifications"
	SwitchShowConsumerInformation             = "ShowConsumerInformation"
	SwitchIncludeDefinitions                  = "IncludeDefinitions"
)

// defaultSwitches is the fixed set sent with every call unless the
// client was built with WithSwitches.
var defaultSwitches = []string{
	SwitchShowExtendedDescriptions,
	SwitchShowAvailableEquipment,
}

const (
	defaultCountry  = "US"
	defaultLanguage = "en"
)

// describeRequest is the fully merged parameter set for a single call,
// validated before it is rendered into SOAP parameters.
type describeRequest struct {
	VIN      string   `json:"vin" validate:"required,len=17"`
	Country  string   `json:"country" validate:"required,iso3166_1_alpha2"`
	Language string   `json:"language" validate:"required,bcp47_language_tag"`
	Switches []string `json:"switches" validate:"required,min=1,dive,required"`
}

// soapParams renders the request into ordered SOAP parameters. The
// account credentials are supplied here, last, so nothing a caller
// passes can override them.
func (r describeRequest) soapParams(auth Authenticator) gosoap.ArrayParams {
	params := gosoap.ArrayParams{
		{"accountInfo", gosoap.Params{
			"number":   auth.AccountNumber(),
			"secret":   auth.AccountSecret(),
			"country":  r.Country,
			"language": r.Language,
		}},
		{"vin", r.VIN},
	}

	for _, s := range r.Switches {
		params = append(params, [2]interface{}{"switches", s})
	}

	return params
}

// mergeSwitches combines the client-level switch set with per-call
// additions, preserving order and dropping duplicates.
func mergeSwitches(base, extra []string) []string {
	merged := slices.Clone(base)
	for _, s := range extra {
		if !slices.Contains(merged, s) {
			merged = append(merged, s)
		}
	}

	return merged
}
