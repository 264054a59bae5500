package errx

import (
	"fmt"
	"sync"
)

type definition struct {
	errType    Type
	httpStatus int
	message    string
}

// Registry holds the error codes of one package under a common prefix
type Registry struct {
	prefix string
	mu     sync.RWMutex
	codes  map[Code]definition
}

// NewRegistry creates a registry whose codes are prefixed with prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[Code]definition),
	}
}

// Register declares a code and returns its fully qualified form
func (r *Registry) Register(code string, errType Type, httpStatus int, message string) Code {
	full := Code(code)
	if r.prefix != "" {
		full = Code(r.prefix + "_" + code)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes[full] = definition{errType: errType, httpStatus: httpStatus, message: message}
	return full
}

// New creates an error for a registered code
func (r *Registry) New(code Code) *Error {
	r.mu.RLock()
	def, ok := r.codes[code]
	r.mu.RUnlock()

	if !ok {
		return &Error{
			Code:       code,
			Type:       TypeInternal,
			Message:    fmt.Sprintf("unregistered error code %s", code),
			HTTPStatus: statusForType(TypeInternal),
		}
	}

	return &Error{
		Code:       code,
		Type:       def.errType,
		Message:    def.message,
		HTTPStatus: def.httpStatus,
	}
}

// NewWithCause creates an error for a registered code with a cause
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	return r.New(code).WithCause(cause)
}

// NewWithMessage creates an error for a registered code with a custom message
func (r *Registry) NewWithMessage(code Code, message string) *Error {
	e := r.New(code)
	e.Message = message
	return e
}

// Prefix returns the registry prefix
func (r *Registry) Prefix() string {
	return r.prefix
}

// Codes returns all registered codes
func (r *Registry) Codes() []Code {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]Code, 0, len(r.codes))
	for c := range r.codes {
		codes = append(codes, c)
	}
	return codes
}
