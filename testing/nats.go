package testing

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// StartEmbeddedNATS starts an in-process NATS server with JetStream enabled
// and returns a connected client.
//
// The server listens on a random port, stores JetStream data in the test's
// temp directory, and is shut down together with the connection via
// t.Cleanup. This keeps kvstore tests free of external dependencies and
// safe to run in parallel.
//
// Parameters:
//   - t: Testing context for fatals and cleanup
//
// Returns:
//   - *nats.Conn: Client connected to the embedded server
func StartEmbeddedNATS(t *testing.T) *nats.Conn {
	t.Helper()

	ns, err := server.NewServer(&server.Options{
		Host:      "127.0.0.1",
		Port:      -1,
		JetStream: true,
		StoreDir:  t.TempDir(),
		NoLog:     true,
	})
	if err != nil {
		t.Fatalf("create embedded NATS server: %v", err)
	}

	go ns.Start()
	if !ns.ReadyForConnections(5 * time.Second) {
		ns.Shutdown()
		t.Fatal("embedded NATS server not ready within timeout")
	}

	nc, err := nats.Connect(ns.ClientURL(), nats.Timeout(2*time.Second))
	if err != nil {
		ns.Shutdown()
		t.Fatalf("connect to embedded NATS server: %v", err)
	}

	t.Cleanup(func() {
		nc.Close()
		ns.Shutdown()
		ns.WaitForShutdown()
	})

	return nc
}

// NewKVBucket creates a JetStream key-value bucket on the given connection.
//
// Parameters:
//   - t: Testing context for fatals
//   - nc: NATS connection (typically from StartEmbeddedNATS)
//   - bucket: Bucket name
//
// Returns:
//   - jetstream.KeyValue: Handle to the freshly created bucket
func NewKVBucket(t *testing.T, nc *nats.Conn, bucket string) jetstream.KeyValue {
	t.Helper()

	js, err := jetstream.New(nc)
	if err != nil {
		t.Fatalf("create JetStream context: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	kv, err := js.CreateKeyValue(ctx, jetstream.KeyValueConfig{Bucket: bucket})
	if err != nil {
		t.Fatalf("create KV bucket %q: %v", bucket, err)
	}

	return kv
}
