package entities

// SigningCredentials are the keystore values read from the credentials
// properties file. All four fields are set together or not at all.
type SigningCredentials struct {
	KeyAlias      string
	KeyPassword   string
	StoreFile     string
	StorePassword string
	Source        string // path of the properties file the values came from
}

// SigningConfigRef is a signing config as declared in the descriptor.
// Credentials are loaded later from PropertiesFile.
type SigningConfigRef struct {
	Name           string
	PropertiesFile string
}

// SigningConfig is a declared signing config with its credentials loaded.
// Credentials is nil when the properties file does not exist.
type SigningConfig struct {
	Name           string
	PropertiesFile string
	Credentials    *SigningCredentials
}

// Populated reports whether credentials were loaded for this config
func (s SigningConfig) Populated() bool {
	return s.Credentials != nil
}
