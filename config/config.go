package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds all configuration read from environment variables.
type Config struct {
	Neo4jURI      string `envconfig:"NEO4J_URI" required:"true"`
	Neo4jUsername string `envconfig:"NEO4J_USERNAME" required:"true"`
	Neo4jPassword string `envconfig:"NEO4J_PASSWORD" required:"true"`

	// NLPModelPath optionally points at a tagger model directory on disk.
	// Empty means the built-in model.
	NLPModelPath string `envconfig:"NLP_MODEL_PATH"`

	AllowedExtensions []string `envconfig:"ALLOWED_EXTENSIONS" default:".txt,.csv,.json,.html,.pdf"`
	MaxFileSizeMB     int      `envconfig:"MAX_FILE_SIZE_MB" default:"250"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads an optional env file and then the process environment. A missing
// env file is not an error; missing required variables are.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, errors.Wrap(err, "loading configuration")
	}

	// Self-signed certificate deployments (Aura free tier, local TLS) reject
	// the strict scheme.
	c.Neo4jURI = strings.Replace(c.Neo4jURI, "neo4j+s://", "neo4j+ssc://", 1)

	return &c, nil
}

// ExtensionAllowed reports whether the lowercased extension (with dot) is an
// accepted input type.
func (c *Config) ExtensionAllowed(ext string) bool {
	for _, allowed := range c.AllowedExtensions {
		if strings.EqualFold(strings.TrimSpace(allowed), ext) {
			return true
		}
	}
	return false
}
