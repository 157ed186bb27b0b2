package metrics

// Package metrics defines the recorder interfaces the grid search and the
// reporter emit observations to. PromRecorder in infra/metrics is the
// Prometheus implementation and LogRecorder writes events to a logger.
// Several recorders can be combined with NewMultiRecorder.
