package loan

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/loan/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Loan Service is active"))
	}).Methods(http.MethodGet)

	router.HandleFunc("/loan/sessions", h.CreateSession).Methods(http.MethodPost)
	router.HandleFunc("/loan/sessions/{id}", h.DeleteSession).Methods(http.MethodDelete)
	router.HandleFunc("/loan/sessions/{id}/uploads/{slot}", h.Upload).Methods(http.MethodPost)
	router.HandleFunc("/loan/sessions/{id}/uploads/{slot}", h.ClearUpload).Methods(http.MethodDelete)
	router.HandleFunc("/loan/sessions/{id}/notices", h.Notices).Methods(http.MethodGet)
	router.HandleFunc("/loan/sessions/{id}/notices", h.ClearNotices).Methods(http.MethodDelete)

	router.HandleFunc("/loan/sessions/{id}/reconciled", h.Reconciled).Methods(http.MethodGet)
	router.HandleFunc("/loan/sessions/{id}/dashboard", h.Dashboard).Methods(http.MethodGet)
	router.HandleFunc("/loan/sessions/{id}/institutions", h.Institutions).Methods(http.MethodGet)
	router.HandleFunc("/loan/sessions/{id}/collateral", h.Collateral).Methods(http.MethodGet)

	return router
}
