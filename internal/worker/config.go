// Package worker provides the background snapshot publisher for EcoRoute.
package worker

import (
	"os"
	"time"
)

// Config holds configuration for the snapshot worker.
type Config struct {
	// ProjectID is the Google Cloud project hosting the Pub/Sub topic.
	ProjectID string

	// TopicName is the topic receiving area metric snapshots.
	TopicName string

	// Interval is how often a snapshot is published.
	Interval time.Duration

	// SpeedKmh is the assumed traffic speed used for emission rates.
	SpeedKmh float64
}

// ConfigFromEnv creates a Config from environment variables.
func ConfigFromEnv() Config {
	interval, err := time.ParseDuration(getEnvOrDefault("SNAPSHOT_INTERVAL", "5m"))
	if err != nil {
		interval = 5 * time.Minute
	}

	return Config{
		ProjectID: os.Getenv("GCP_PROJECT_ID"),
		TopicName: getEnvOrDefault("SNAPSHOT_TOPIC", "ecoroute-area-snapshots"),
		Interval:  interval,
		SpeedKmh:  0, // service default
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
