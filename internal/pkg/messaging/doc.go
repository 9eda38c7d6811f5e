// Package messaging publishes and consumes domain events independently of the
// broker. NATS and Kafka back production deployments; the in-process Memory
// broker serves single-binary local runs and tests.
package messaging
