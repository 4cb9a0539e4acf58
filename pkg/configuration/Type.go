package configuration

// Configuration is the explicit context every component takes instead of
// reaching into global state.
type Configuration struct {
	API           string `json:"api" yaml:"api" mapstructure:"api" validate:"required,url"`
	ApplicationID string `json:"applicationId" yaml:"applicationId" mapstructure:"applicationId" validate:"required"`
	ClientKey     string `json:"clientKey" yaml:"clientKey" mapstructure:"clientKey"`
	RootDir       string `json:"rootDir" yaml:"rootDir" mapstructure:"rootDir"`
	InMemory      bool   `json:"inMemory" yaml:"inMemory" mapstructure:"inMemory"`
	LogLevel      string `json:"logLevel" yaml:"logLevel" mapstructure:"logLevel"`
	BatchSize     int    `json:"batchSize" yaml:"batchSize" mapstructure:"batchSize" validate:"gte=1"`
	MaxRetries    uint64 `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
	RetryInterval string `json:"retryInterval" yaml:"retryInterval" mapstructure:"retryInterval" validate:"required"`
	APITimeout    string `json:"apiTimeout" yaml:"apiTimeout" mapstructure:"apiTimeout" validate:"required"`
}
