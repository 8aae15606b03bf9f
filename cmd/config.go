package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaBrokers         []string
	KafkaOrderEventTopic string

	RiderJobServiceURL string

	ReservationTTL           time.Duration
	ReservationSweepSchedule string
}
