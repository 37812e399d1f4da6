package pdfoverlay

import "testing"

// stashRuntime clears the package-level runtime state for the duration of a
// test so tests don't observe an Init done by another test.
func stashRuntime(t *testing.T) {
	t.Helper()

	runtimeMu.Lock()
	svc, log := runtimeSvc, runtimeLog
	runtimeSvc, runtimeLog = nil, nil
	runtimeMu.Unlock()

	t.Cleanup(func() {
		runtimeMu.Lock()
		runtimeSvc, runtimeLog = svc, log
		runtimeMu.Unlock()
	})
}

func TestInitInstallsDocumentService(t *testing.T) {
	stashRuntime(t)

	Init(RuntimeConfig{})

	engine, err := NewEngine(nil)
	if err != nil {
		t.Fatalf("NewEngine after Init: %v", err)
	}
	defer engine.Destroy()

	if _, ok := engine.svc.(*FitzService); !ok {
		t.Errorf("service = %T, want *FitzService", engine.svc)
	}
}
