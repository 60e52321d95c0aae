package cmd

// Config carries every environment-driven setting of the service.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	ShipStationV1BaseURL string
	ShipStationV2BaseURL string
	ShipStationAPIKey    string
	ShipStationAPISecret string
	ShipStationV2APIKey  string

	DefaultServiceCode       string
	DefaultInsuranceProvider string

	ShipFromName        string
	ShipFromCompany     string
	ShipFromPhone       string
	ShipFromAddress1    string
	ShipFromAddress2    string
	ShipFromCity        string
	ShipFromState       string
	ShipFromPostalCode  string
	ShipFromCountryCode string
	ShipFromResidential string

	DefaultPackageWeightValue   float64
	DefaultPackageWeightUnit    string
	DefaultPackageLength        float64
	DefaultPackageWidth         float64
	DefaultPackageHeight        float64
	DefaultPackageDimensionUnit string

	// ERPMode selects the sales order submitter: "dynamics" for the real
	// Dynamics 365 client, anything else for the simulated one.
	ERPMode string

	D365URL          string
	D365TenantID     string
	D365ClientID     string
	D365ClientSecret string

	AutoProcessingDefault bool
}
