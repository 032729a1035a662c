package constants

// Content Types
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "Content-Type"
)

// Form fields and query parameters
const (
	FormFieldFile    = "file"
	QueryParamSearch = "q"
	QueryParamCols   = "columns"
)
