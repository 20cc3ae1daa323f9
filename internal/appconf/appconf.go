package appconf

import "strings"

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag onto an Environment.
// Unknown values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// Config holds the settings for the calculator API server, read from
// command-line flags when the server starts.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int
	LogLevel  string
}

// ParseAPIKeys splits a comma separated -api-keys value, dropping blanks.
func ParseAPIKeys(flagValue string) []string {
	var keys []string
	for _, key := range strings.Split(flagValue, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
