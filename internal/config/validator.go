package config

// Example values shipped in .env.example that must not reach production
const (
	exampleDBPassword = "change_this_secure_password"
	defaultDBPassword = "postgres"
	envProduction     = "prod"
)

// Warnings reports non-fatal configuration problems worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.UsesPostgres() {
		if c.DBPassword == exampleDBPassword {
			warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
		} else if c.Environment == envProduction && c.DBPassword == defaultDBPassword {
			warnings = append(warnings, "DB_PASSWORD uses the default value in production")
		}
	}

	if c.Environment == envProduction && len(c.CORSAllowedOrigins) == 1 && c.CORSAllowedOrigins[0] == "*" {
		warnings = append(warnings, "CORS_ALLOWED_ORIGINS allows every origin in production")
	}

	if c.Environment == envProduction && c.RNGSeed != 0 {
		warnings = append(warnings, "RNG_SEED is set in production - outcomes are reproducible")
	}

	return warnings
}
