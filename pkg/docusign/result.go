package docusign

// Action is the outcome channel of an authentication attempt.
type Action string

const (
	ActionRedirect Action = "redirect"
	ActionSuccess  Action = "success"
	ActionFail     Action = "fail"
	ActionError    Action = "error"
)

// FailInfo describes a recoverable authentication failure.
type FailInfo struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error_code,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// Result is the single outcome of Strategy.Authenticate. Exactly one of
// RedirectURL, User, Info or Err is meaningful, as selected by Action.
type Result struct {
	Action      Action
	RedirectURL string

	User    any
	Profile *Profile
	Token   *Token

	Info *FailInfo
	Err  error

	// Path lists the flow states visited, ending with the terminal one.
	Path []string
}

// State returns the terminal flow state of the attempt.
func (r Result) State() string {
	if len(r.Path) == 0 {
		return ""
	}
	return r.Path[len(r.Path)-1]
}

// Host receives the outcome of an attempt.
type Host interface {
	Redirect(url string)
	Success(user any, profile *Profile)
	Fail(info FailInfo)
	Error(err error)
}

// Deliver invokes exactly one Host method for r.
func (r Result) Deliver(h Host) {
	switch r.Action {
	case ActionRedirect:
		h.Redirect(r.RedirectURL)
	case ActionSuccess:
		h.Success(r.User, r.Profile)
	case ActionFail:
		info := FailInfo{}
		if r.Info != nil {
			info = *r.Info
		}
		h.Fail(info)
	default:
		h.Error(r.Err)
	}
}
