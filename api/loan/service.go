package loan

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"KasfoMonitor/api"
	"KasfoMonitor/internal/config"
	"KasfoMonitor/internal/logger"
	"KasfoMonitor/internal/serviceiface"
	"KasfoMonitor/internal/session"
)

// LoanService serves the upload and reconciliation API on its own port.
type LoanService struct {
	config   map[string]interface{}
	sessions *session.Manager
	server   *http.Server
}

func NewLoanService(cfg map[string]interface{}, sessions *session.Manager) serviceiface.Service {
	return &LoanService{config: cfg, sessions: sessions}
}

func (s *LoanService) Name() string {
	return "loan"
}

func (s *LoanService) Start() error {
	port := config.Int(s.config, "port", config.DefaultLoanPort)
	h := NewHandler(
		s.sessions,
		time.Duration(config.Int(s.config, "session_ttl_minutes", int(config.DefaultSessionTTL/time.Minute)))*time.Minute,
		int64(config.Int(s.config, "max_upload_mb", config.DefaultMaxUploadMB))<<20,
	)
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		api.LogInfo("Loan service listening on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			api.LogError("loan service stopped: %v", err)
		}
	}()
	logger.GlobalLogger.LogAudit(fmt.Sprintf("Loan service started on port %d", port))
	return nil
}

func (s *LoanService) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
