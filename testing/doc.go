// Package testing provides helpers for tests of scribematch-based code: a
// logger that forwards to testing.T, and an embedded NATS server with
// JetStream enabled for exercising the kvstore package without external
// infrastructure.
package testing
