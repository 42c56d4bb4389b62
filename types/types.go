package types

type Response struct {
	Success bool              `json:"success" description:"Indicates if the request was successful"`
	Context map[string]string `json:"context,omitempty" description:"Context of the response"`
	Message *string           `json:"message,omitempty" description:"Message of the response"`
	JSON    any               `json:"json,omitempty" description:"JSON data of the response"`
}

// ApiError is the body of every non-2xx response
type ApiError struct {
	Message string            `json:"message" description:"Message of the error"`
	Context map[string]string `json:"context,omitempty" description:"Context of the error"`
}

// Status is returned by GET /status
type Status struct {
	FastModel      string `json:"fast_model" description:"Model used for enumerable content"`
	ReasoningModel string `json:"reasoning_model" description:"Model used for insights"`
	StorageBackend string `json:"storage_backend" description:"Theme preference storage backend"`
	MountedScreens int    `json:"mounted_screens" description:"Number of mounted screen instances"`
}
