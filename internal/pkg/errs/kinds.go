package errs

// Failure kinds shared by every layer. Handlers branch on these, never on
// individual sentinels.
var (
	ErrValidation    = New("validation failed")
	ErrNotFound      = New("not found")
	ErrConflict      = New("conflicting holding")
	ErrUnauthorized  = New("not authorized")
	ErrInconsistency = New("inconsistent item status")
)

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// NewKind returns a sentinel that matches both itself and kind under Is.
func NewKind(kind error, msg string) error {
	return &kindError{msg: msg, kind: kind}
}

// KindOf reports which failure kind err belongs to, or nil.
func KindOf(err error) error {
	for _, k := range []error{ErrConflict, ErrUnauthorized, ErrNotFound, ErrValidation, ErrInconsistency} {
		if Is(err, k) {
			return k
		}
	}
	return nil
}
