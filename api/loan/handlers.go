package loan

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"KasfoMonitor/api"
	"KasfoMonitor/api/constants"
	"KasfoMonitor/api/utils"
	"KasfoMonitor/internal/checksum"
	engine "KasfoMonitor/internal/loan"
	"KasfoMonitor/internal/logger"
	"KasfoMonitor/internal/notification"
	"KasfoMonitor/internal/report"
	"KasfoMonitor/internal/session"

	"github.com/gorilla/mux"
)

type Handler struct {
	sessions       *session.Manager
	ttl            time.Duration
	maxUploadBytes int64
}

func NewHandler(sessions *session.Manager, ttl time.Duration, maxUploadBytes int64) *Handler {
	return &Handler{sessions: sessions, ttl: ttl, maxUploadBytes: maxUploadBytes}
}

// UploadResult describes the outcome of a slot upload.
type UploadResult struct {
	Slot      session.Slot `json:"slot"`
	FileName  string       `json:"file_name"`
	Rows      int          `json:"rows"`
	Columns   []string     `json:"columns"`
	Unchanged bool         `json:"unchanged"`
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := mux.Vars(r)["id"]
	s, ok := h.sessions.GetSession(id)
	if !ok {
		api.RespondWithError(w, http.StatusNotFound, constants.ErrSessionNotFound)
		return nil, false
	}
	return s, true
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.CreateSession(h.ttl)
	logger.GlobalLogger.LogAudit("session created: " + s.ID)
	api.RespondWithPayload(w, true, "", map[string]interface{}{
		"session_id": s.ID,
		"expires_at": s.ExpiresAt(),
	})
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.sessions.DeleteSession(id) {
		api.RespondWithError(w, http.StatusNotFound, constants.ErrSessionNotFound)
		return
	}
	logger.GlobalLogger.LogAudit("session ended: " + id)
	api.RespondWithResult(w, true, "")
}

// Upload loads the multipart "file" into the slot. A failed load keeps the
// slot's previous table and is recorded as a notice.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	slot, ok := session.ParseSlot(mux.Vars(r)["slot"])
	if !ok {
		api.RespondWithError(w, http.StatusBadRequest, constants.ErrInvalidSlot)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.RespondWithError(w, http.StatusRequestEntityTooLarge, constants.ErrFileTooLarge)
			return
		}
		api.RespondWithError(w, http.StatusBadRequest, constants.ErrInvalidMultipart)
		return
	}
	file, header, err := r.FormFile(constants.FormFieldFile)
	if err != nil {
		api.RespondWithError(w, http.StatusBadRequest, constants.ErrNoFileUploaded)
		return
	}
	if !engine.Supported(header.Filename) {
		file.Close()
		loadErr := &engine.LoadError{File: header.Filename, Err: engine.ErrUnsupportedFileType}
		s.Notices.AddNotification(notification.LevelError, fmt.Sprintf(constants.NoticeLoadFailed, loadErr))
		api.RespondWithError(w, http.StatusUnsupportedMediaType, loadErr.Error())
		return
	}
	data, err := io.ReadAll(file)
	file.Close()
	if err != nil {
		api.RespondWithError(w, http.StatusBadRequest, constants.ErrFileReadFailed)
		return
	}

	if prev, ok := h.unchanged(s, slot, header.Filename, data); ok {
		s.Notices.AddNotification(notification.LevelInfo, fmt.Sprintf(constants.NoticeUnchanged, header.Filename))
		api.RespondWithPayload(w, true, "", UploadResult{
			Slot: slot, FileName: prev.FileName, Rows: prev.Table.Len(), Columns: prev.Table.Columns, Unchanged: true,
		})
		return
	}

	tbl, err := engine.LoadBytes(data, header.Filename)
	if err != nil {
		s.Notices.AddNotification(notification.LevelError, fmt.Sprintf(constants.NoticeLoadFailed, err))
		api.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.Replace(slot, &session.Upload{
		FileName:    header.Filename,
		Fingerprint: checksum.Fingerprint(data),
		LoadedAt:    time.Now(),
		Table:       tbl,
	})
	s.Notices.AddNotification(notification.LevelSuccess, fmt.Sprintf(constants.NoticeLoaded, tbl.Len()))
	logger.GlobalLogger.LogAudit(fmt.Sprintf("session %s: %s loaded into %s (%d rows)", s.ID, header.Filename, slot, tbl.Len()))

	api.RespondWithPayload(w, true, "", UploadResult{
		Slot: slot, FileName: header.Filename, Rows: tbl.Len(), Columns: tbl.Columns,
	})
}

func (h *Handler) unchanged(s *session.Session, slot session.Slot, name string, data []byte) (*session.Upload, bool) {
	prev, ok := s.Get(slot)
	if !ok || prev.FileName != name || prev.Fingerprint == "" {
		return nil, false
	}
	same, err := checksum.NewChecksumMatcher(prev.Fingerprint).Match(data)
	if err != nil || !same {
		return nil, false
	}
	return prev, true
}

func (h *Handler) ClearUpload(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	slot, ok := session.ParseSlot(mux.Vars(r)["slot"])
	if !ok {
		api.RespondWithError(w, http.StatusBadRequest, constants.ErrInvalidSlot)
		return
	}
	s.Clear(slot)
	s.Notices.AddNotification(notification.LevelInfo, fmt.Sprintf(constants.NoticeCleared, slot))
	api.RespondWithResult(w, true, "")
}

func (h *Handler) Notices(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	api.RespondWithPayload(w, true, "", s.Notices.GetNotifications())
}

func (h *Handler) ClearNotices(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Notices.ClearNotifications()
	api.RespondWithResult(w, true, "")
}

// ReconciledPage is one page of the reconciled table.
type ReconciledPage struct {
	*engine.Reconciliation
	Pagination utils.PaginationParams `json:"pagination"`
}

// Reconciled returns the reconciled table, optionally projected to
// ?columns=a,b, filtered by ?q= and paged by ?page=&limit=.
func (h *Handler) Reconciled(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	page, err := utils.ExtractPagination(r)
	if err != nil {
		api.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec := s.Reconcile()
	if rec == nil {
		respondView(w, nil, report.ErrNoData)
		return
	}
	t := rec.Table
	if cols := splitColumns(r.URL.Query().Get(constants.QueryParamCols)); len(cols) > 0 {
		t = t.Select(cols...)
	}
	t = t.Filter(r.URL.Query().Get(constants.QueryParamSearch))

	page.SetPaginationStats(t.Len())
	start, end := page.Bounds(t.Len())
	t = &engine.Table{Columns: t.Columns, Rows: t.Rows[start:end]}

	respondView(w, ReconciledPage{
		Reconciliation: &engine.Reconciliation{
			Table:         t,
			LedgerMerged:  rec.LedgerMerged,
			Discrepancies: rec.Discrepancies,
		},
		Pagination: page,
	}, nil)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	d, err := report.BuildDashboard(s.Reconcile())
	respondView(w, d, err)
}

func (h *Handler) Institutions(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	l, err := report.Institutions(s.Reconcile(), r.URL.Query().Get(constants.QueryParamSearch))
	respondView(w, l, err)
}

func (h *Handler) Collateral(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	c, err := report.Collateral(s.Reconcile())
	respondView(w, c, err)
}

// respondView answers 200 either way; a view that has nothing to show is
// reported with success=false and the reason.
func respondView(w http.ResponseWriter, payload interface{}, err error) {
	if err != nil {
		if errors.Is(err, report.ErrNoData) || errors.Is(err, report.ErrNoCollateral) {
			api.RespondWithPayload(w, false, err.Error(), nil)
			return
		}
		api.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	api.RespondWithPayload(w, true, "", payload)
}

func splitColumns(raw string) []string {
	var cols []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cols = append(cols, c)
		}
	}
	return cols
}
