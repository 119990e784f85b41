package config // package config loads application configuration from environment variables

import (
	"log"  // log is used to report configuration errors and halt execution
	"os"   // os provides access to environment variables
	"time" // time expresses the remote call deadline
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers, a duration for the remote
// call deadline.
type Config struct {
	Env           string        // application environment (e.g. "dev", "prod")
	Port          string        // HTTP port to listen on
	LessonsAPIURL string        // base URL of the remote lessons API
	HTTPTimeout   time.Duration // per-call deadline for lessons API requests
	PublishEvents bool          // emit order.placed events to the broker
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),                               // environment (dev/test/prod)
		Port:          must("APP_PORT"),                              // port to bind the HTTP server
		LessonsAPIURL: must("LESSONS_API_URL"),                       // remote inventory store endpoint
		HTTPTimeout:   envDur("HTTP_CLIENT_TIMEOUT", 10*time.Second), // deadline per remote call
		PublishEvents: envBool("EVENTS_ENABLED", false),              // order.placed publishing
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
