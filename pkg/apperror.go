package pkg

// AppError is the domain-error envelope carried from the use case boundary to
// the HTTP layer. The wrapped cause is logged server-side only and never
// serialized unless the handler explicitly opts in (development mode).
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// HTTPError is the JSON error body returned to clients.
type HTTPError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Success bool   `json:"success"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: e.Message, Success: false}
}

// ToHTTPErrorWithDetails exposes the wrapped cause in the response body.
// Only the development configuration may call this.
func (e *AppError) ToHTTPErrorWithDetails() HTTPError {
	out := e.ToHTTPError()
	if e.Err != nil {
		out.Details = e.Err.Error()
	}
	return out
}
