package client

import "encoding/xml"

// responseCodeSuccessful is the responseStatus code for a usable answer.
const responseCodeSuccessful = "Successful"

// VehicleDescription is the typed view over a describeVehicle response.
// Only the commonly used portion of the service schema is mapped;
// unmapped elements are ignored during decoding.
type VehicleDescription struct {
	XMLName xml.Name `xml:"VehicleDescription"`

	Country       string `xml:"country,attr"`
	Language      string `xml:"language,attr"`
	BestMakeName  string `xml:"bestMakeName,attr"`
	BestModelName string `xml:"bestModelName,attr"`
	BestStyleName string `xml:"bestStyleName,attr"`
	BestTrimName  string `xml:"bestTrimName,attr"`

	Status         ResponseStatus           `xml:"responseStatus"`
	VINDescription VINDescription           `xml:"vinDescription"`
	Styles         []Style                  `xml:"style"`
	Engines        []Engine                 `xml:"engine"`
	Standard       []Equipment              `xml:"standard"`
	FactoryOptions []FactoryOption          `xml:"factoryOption"`
	TechSpecs      []TechnicalSpecification `xml:"technicalSpecification"`
}

// Successful reports whether the service marked the response usable.
func (d *VehicleDescription) Successful() bool {
	return d.Status.ResponseCode == responseCodeSuccessful
}

// ModelYear returns the model year decoded from the VIN.
func (d *VehicleDescription) ModelYear() int {
	return d.VINDescription.ModelYear
}

// BestMake returns the service's best-match make name.
func (d *VehicleDescription) BestMake() string { return d.BestMakeName }

// BestModel returns the service's best-match model name.
func (d *VehicleDescription) BestModel() string { return d.BestModelName }

// BestStyle returns the service's best-match style name.
func (d *VehicleDescription) BestStyle() string { return d.BestStyleName }

// BestTrim returns the service's best-match trim name.
func (d *VehicleDescription) BestTrim() string { return d.BestTrimName }

// ResponseStatus carries the service's verdict on the request.
type ResponseStatus struct {
	ResponseCode string `xml:"responseCode,attr"`
	Description  string `xml:"description,attr"`
}

// VINDescription holds the attributes decoded directly from the VIN.
type VINDescription struct {
	VIN           string `xml:"vin,attr"`
	ModelYear     int    `xml:"modelYear,attr"`
	Division      string `xml:"division,attr"`
	ModelName     string `xml:"modelName,attr"`
	StyleName     string `xml:"styleName,attr"`
	BodyType      string `xml:"bodyType,attr"`
	DrivingWheels string `xml:"drivingWheels,attr"`
	BuildDate     string `xml:"buildDate,attr"`
}

// Style is one body/trim configuration matching the VIN.
type Style struct {
	ID             int    `xml:"id,attr"`
	Name           string `xml:"name,attr"`
	TrimName       string `xml:"trimName,attr"`
	NameWoTrim     string `xml:"nameWoTrim,attr"`
	MktClass       string `xml:"mktClass,attr"`
	PassDoors      int    `xml:"passDoors,attr"`
	AltBodyType    string `xml:"altBodyType,attr"`
	DrivetrainDesc string `xml:"drivetrainDesc,attr"`
}

// CategoryValue is the service's recurring id-plus-text element.
type CategoryValue struct {
	ID    int    `xml:"id,attr"`
	Value string `xml:",chardata"`
}

// RPMValue is a measurement taken at a given engine speed.
type RPMValue struct {
	Value float64 `xml:"value,attr"`
	RPM   int     `xml:"rpm,attr"`
}

// Displacement is an engine displacement in liters.
type Displacement struct {
	Liters float64 `xml:"value>liters"`
}

// Engine describes one engine offered for the matched styles.
type Engine struct {
	EngineType   CategoryValue `xml:"engineType"`
	FuelType     CategoryValue `xml:"fuelType"`
	Horsepower   RPMValue      `xml:"horsepower"`
	NetTorque    RPMValue      `xml:"netTorque"`
	Displacement Displacement  `xml:"displacement"`
}

// Equipment is a single standard equipment record.
type Equipment struct {
	Header      CategoryValue `xml:"header"`
	Description string        `xml:"description"`
	Categories  []CategoryRef `xml:"category"`
}

// CategoryRef points at a service equipment category.
type CategoryRef struct {
	ID int `xml:"id,attr"`
}

// FactoryOption is a single factory-installed option record.
type FactoryOption struct {
	Header       CategoryValue `xml:"header"`
	Descriptions []string      `xml:"description"`
	OEMCode      string        `xml:"oemCode,attr"`
	ChromeCode   string        `xml:"chromeCode,attr"`
	StandardFlag string        `xml:"standard,attr"`
}

// TechnicalSpecification is a single technical measurement grouped
// under a titled heading.
type TechnicalSpecification struct {
	Title  CategoryValue `xml:"title"`
	Values []TechValue   `xml:"value"`
}

// TechValue is a technical specification value scoped to a style.
type TechValue struct {
	Value     string `xml:"value,attr"`
	Condition string `xml:"condition,attr"`
	StyleID   int    `xml:"styleId,attr"`
}
