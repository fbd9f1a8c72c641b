package generator

// Operations reported by Error.
const (
	OpRead  = "read"
	OpWrite = "write"
)

// Error records a failed file operation and the path it failed on.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
