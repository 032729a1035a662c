package api

import (
	"encoding/json"
	"log"
	"net/http"

	"KasfoMonitor/api/constants"
)

// writeJSON sends body as the response with the given status.
func writeJSON(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set(constants.ContentTypeText, constants.ContentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		LogError("encode response: %v", err)
	}
}

// RespondWithError answers with status and {"success": false, "error": errMsg}.
func RespondWithError(w http.ResponseWriter, status int, errMsg string) {
	LogError(errMsg)
	writeJSON(w, status, map[string]interface{}{"success": false, "error": errMsg})
}

// RespondWithResult answers 200 with a bare success flag.
func RespondWithResult(w http.ResponseWriter, success bool, errMsg string) {
	body := map[string]interface{}{"success": success}
	if !success {
		body["error"] = errMsg
		LogError("RespondWithResult %s", errMsg)
	}
	writeJSON(w, http.StatusOK, body)
}

// RespondWithPayload answers 200 with the payload under "rows". A view with
// nothing to show sets success=false and carries the reason in "error".
func RespondWithPayload(w http.ResponseWriter, success bool, errMsg string, payload interface{}) {
	body := map[string]interface{}{"success": success}
	if !success && errMsg != "" {
		body["error"] = errMsg
		LogError("RespondWithPayload %s", errMsg)
	}
	if payload != nil {
		body["rows"] = payload
	}
	writeJSON(w, http.StatusOK, body)
}

// LogInfo logs an informational message (wrapper for consistent logging)
func LogInfo(msg string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[INFO] "+msg, args...)
	} else {
		log.Println("[INFO]", msg)
	}
}

// LogError logs an error message (wrapper for consistent logging)
func LogError(msg string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[ERROR] "+msg, args...)
	} else {
		log.Println("[ERROR]", msg)
	}
}
