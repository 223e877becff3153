package chatclient

import "strings"

// FailureKind buckets proxy errors the way the site widget does, so the
// user always gets a friendly next step instead of a raw error.
type FailureKind int

const (
	FailureGeneric FailureKind = iota
	FailureLimit
	FailureMissingKey
)

const contactLine = "LinkedIn: https://linkedin.com/in/navaneethad or Gmail: navaneeth.ad04@gmail.com"

// WelcomeMessage opens every conversation.
const WelcomeMessage = "Hi, I am Nav. Talk to me until Navaneeth is available. I can help with projects, experience, research, certifications, and skills."

const (
	fallbackGeneric = "I am having a small delay on my side right now. You can still reach Navaneeth directly via " + contactLine

	fallbackLimit = "Looks like this chat hit a request limit for now. Please try again in a bit, or connect directly on " + contactLine

	fallbackMissingKey = "Chat setup is being updated right now. For immediate contact, please use " + contactLine
)

// Classify inspects the error text for the substrings the proxy has kept
// stable. 429/quota/limit wording means upstream capacity, the credential
// marker means server misconfiguration, anything else is transient.
func Classify(errText string) FailureKind {
	lower := strings.ToLower(errText)

	switch {
	case strings.Contains(lower, "429"),
		strings.Contains(lower, "rate limit"),
		strings.Contains(lower, "quota"),
		strings.Contains(lower, "credits"),
		strings.Contains(lower, "limit"):
		return FailureLimit
	case strings.Contains(lower, "openrouter_api_key"):
		return FailureMissingKey
	default:
		return FailureGeneric
	}
}

// Fallback returns the canned message for a failure kind.
func Fallback(kind FailureKind) string {
	switch kind {
	case FailureLimit:
		return fallbackLimit
	case FailureMissingKey:
		return fallbackMissingKey
	default:
		return fallbackGeneric
	}
}
