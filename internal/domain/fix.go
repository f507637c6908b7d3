package domain

// FixRequest is the payload posted to the fix service.
type FixRequest struct {
	Code     string   `json:"code"`
	Language string   `json:"language"`
	Filename string   `json:"filename"`
	Problems []string `json:"problems"`
}

// FixResponse is the fix service reply. FixedCode must be non-empty to proceed.
type FixResponse struct {
	FixedCode   string   `json:"fixedCode"`
	Explanation string   `json:"explanation"`
	Confidence  *float64 `json:"confidence,omitempty"`
}

// Scope selects what part of the document is sent.
type Scope string

const (
	ScopeFile      Scope = "file"
	ScopeSelection Scope = "selection"
)

// Target is the resolved text and range of one fix invocation.
type Target struct {
	Document *Document `json:"document"`
	Range    Range     `json:"range"`
	Text     string    `json:"-"`
}

// Choice is a user decision at a prompt.
type Choice string

const (
	ChoiceApply    Choice = "apply"
	ChoiceShowDiff Choice = "show_diff"
	ChoiceCancel   Choice = "cancel"
)

// Label returns the button text shown for a choice.
func (c Choice) Label() string {
	switch c {
	case ChoiceApply:
		return "Apply"
	case ChoiceShowDiff:
		return "Show Diff"
	case ChoiceCancel:
		return "Cancel"
	default:
		return string(c)
	}
}

// FixOutcome summarizes a finished fix flow.
type FixOutcome struct {
	State    FlowState    `json:"state"`
	Path     []FlowState  `json:"path"`
	File     string       `json:"file"`
	Range    Range        `json:"range"`
	Response *FixResponse `json:"response,omitempty"`
	Original string       `json:"-"`
}
