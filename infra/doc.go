// Package infra contains technical adapters such as the zerolog logger,
// the Prometheus recorder, artifact storage and the run history. These
// packages should depend only on the interfaces defined in the core
// packages.
package infra
