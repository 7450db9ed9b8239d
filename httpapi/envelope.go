package httpapi

// Envelope is the uniform response body of the whole inbound surface.
type Envelope struct {
	Message    string `json:"Message"`
	Status     string `json:"Status"`
	StatusNo   int    `json:"StatusNo"`
	MasterData any    `json:"MasterData"`
}

const (
	statusSuccess = "Success"
	statusFailure = "Failure"
)

// Format builds the envelope: Success iff data is non-nil. Formatting an
// Envelope returns it unchanged, so applying the formatter twice is the same
// as applying it once.
func Format(message string, data any) Envelope {
	if env, ok := data.(Envelope); ok {
		return env
	}
	if data == nil {
		return Envelope{Message: message, Status: statusFailure, StatusNo: 1, MasterData: nil}
	}
	return Envelope{Message: message, Status: statusSuccess, StatusNo: 0, MasterData: data}
}

// Failure builds an explicit failure envelope that may still carry data,
// such as provider error text or post-commit correlation identifiers.
func Failure(message string, data any) Envelope {
	return Envelope{Message: message, Status: statusFailure, StatusNo: 1, MasterData: data}
}
