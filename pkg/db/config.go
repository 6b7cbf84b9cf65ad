package db

// PostgresConfig is populated by envconfig, nested under the service
// prefix (e.g. SNACKSTORE_POSTGRES_HOST).
type PostgresConfig struct {
	Host     string `default:"localhost"`
	Port     int    `default:"5432"`
	User     string `default:"postgres"`
	Password string
	DBName   string `split_words:"true" default:"snackstore"`
	SSLMode  string `split_words:"true" default:"disable"`
}
