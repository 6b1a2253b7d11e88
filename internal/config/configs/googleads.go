package configs

// GoogleAds holds the credentials of the Google Ads API. Without a complete
// set the server publishes through a mock provider.
type GoogleAds struct {
	DeveloperToken  string `env:"DEVELOPER_TOKEN"`
	ClientID        string `env:"CLIENT_ID"`
	ClientSecret    string `env:"CLIENT_SECRET"`
	RefreshToken    string `env:"REFRESH_TOKEN"`
	LoginCustomerID string `env:"LOGIN_CUSTOMER_ID"`
	CustomerID      string `env:"CUSTOMER_ID"`
	// Endpoint is the REST base URL including the API version.
	Endpoint string `env:"ENDPOINT" envDefault:"https://googleads.googleapis.com/v17"`
}

// Configured reports whether every credential is present.
func (c GoogleAds) Configured() bool {
	return c.DeveloperToken != "" &&
		c.ClientID != "" &&
		c.ClientSecret != "" &&
		c.RefreshToken != "" &&
		c.LoginCustomerID != "" &&
		c.CustomerID != ""
}
