package constants

// ============================================================================
// SESSION ERRORS
// ============================================================================

const (
	ErrSessionNotFound = "Session not found or expired. Please start a new session"
	ErrSessionRequired = "session id is required"
)

// ============================================================================
// FILE UPLOAD ERRORS
// ============================================================================

const (
	ErrInvalidSlot      = "Upload slot must be 'loan' or 'repayment'"
	ErrInvalidMultipart = "Failed to parse multipart form"
	ErrNoFileUploaded   = "No file uploaded. Use the 'file' form field"
	ErrFileTooLarge     = "File size exceeds the maximum limit"
	ErrFileReadFailed   = "Failed to read uploaded file"
)

// ============================================================================
// NOTICE TEMPLATES (shown to the session user)
// ============================================================================

const (
	NoticeLoadFailed = "파일 읽기 실패: %v"
	NoticeLoaded     = "로드 완료: %d건"
	NoticeUnchanged  = "변경 없음: %s"
	NoticeCleared    = "초기화: %s"
)
