package service_test

import (
	"testing"

	"gamevault/internal/audit"
	"gamevault/internal/service"
	"gamevault/internal/storage"
)

var actor = audit.Actor{Username: "admin", IP: "203.0.113.9", UserAgent: "test"}

func newTestService(t *testing.T) (*service.Service, *audit.Sink) {
	t.Helper()

	port := storage.NewMemory()
	sink := audit.NewSink(port, nil)
	if err := sink.Bootstrap(); err != nil {
		t.Fatalf("audit bootstrap: %v", err)
	}

	svc := service.New(port, nil, sink)
	if err := svc.Bootstrap("admin", "admin@test.local", "swordfish-42"); err != nil {
		t.Fatalf("service bootstrap: %v", err)
	}
	return svc, sink
}

func auditCount(t *testing.T, sink *audit.Sink) int {
	t.Helper()
	count, err := sink.Count()
	if err != nil {
		t.Fatalf("audit count: %v", err)
	}
	return count
}
