package pdfoverlay

import (
	"log/slog"
	"net/http"
	"sync"
)

// RuntimeConfig is the process-wide configuration applied by Init.
type RuntimeConfig struct {
	// HTTPClient fetches http/https document URLs. Nil uses
	// http.DefaultClient.
	HTTPClient *http.Client

	// Logger is the default logger for engines constructed without one.
	// Nil uses slog.Default.
	Logger *slog.Logger
}

var (
	runtimeMu  sync.Mutex
	runtimeSvc DocumentService
	runtimeLog *slog.Logger
)

// Init performs the one-time runtime setup the host application must run
// before constructing an engine without an explicit DocumentService. It
// installs the go-fitz backed document service. Calling it again replaces
// the configuration.
func Init(cfg RuntimeConfig) {
	runtimeMu.Lock()
	defer runtimeMu.Unlock()

	runtimeSvc = &FitzService{Client: cfg.HTTPClient}
	runtimeLog = cfg.Logger
}

func runtimeService() DocumentService {
	runtimeMu.Lock()
	defer runtimeMu.Unlock()
	return runtimeSvc
}

func runtimeLogger() *slog.Logger {
	runtimeMu.Lock()
	defer runtimeMu.Unlock()

	if runtimeLog == nil {
		return slog.Default()
	}
	return runtimeLog
}
