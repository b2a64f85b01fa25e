package ui

// Level is a notice's severity.
type Level string

const (
	Success Level = "success"
	Info    Level = "info"
	Warning Level = "warning"
	Danger  Level = "danger"
)

// Notice is a transient message for the user.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// IsZero reports whether no notice is set.
func (n Notice) IsZero() bool { return n.Message == "" }
