package models

// Error kinds exposed alongside the error message so clients can
// discriminate failures without sniffing substrings.
const (
	ErrKindValidation        = "validation"
	ErrKindConfiguration     = "configuration"
	ErrKindUpstreamRateLimit = "upstream_rate_limited"
	ErrKindUpstreamOther     = "upstream_other"
	ErrKindTransport         = "transport"
)

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the sanitized reply returned to the widget.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is the failure payload. Error keeps the human-readable
// text the widget's keyword classifier matches on; Kind is the structured
// discriminator newer clients should use instead.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
