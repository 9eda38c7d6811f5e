package messaging

import (
	"fmt"
	"strings"
)

const (
	DriverNATS   = "nats"
	DriverKafka  = "kafka"
	DriverMemory = "memory"
)

type FactoryOptions struct {
	NATS  NATSConfig
	Kafka KafkaConfig
}

// NewFromDriver builds the client selected by messaging.driver.
func NewFromDriver(driver string, opts FactoryOptions) (Messaging, error) {
	switch strings.TrimSpace(driver) {
	case DriverNATS:
		return NewNATS(opts.NATS)
	case DriverKafka:
		return NewKafka(opts.Kafka)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("messaging: unknown driver %q", driver)
	}
}
