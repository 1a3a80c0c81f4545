package avatar

// UploadRequest represents an avatar upload request.
type UploadRequest struct {
	Filename string `json:"filename"`
	Data     []byte `json:"data"`
}

// UploadResponse carries the stored object name.
type UploadResponse struct {
	Name string `json:"name"`
}

// FetchRequest represents an avatar fetch request.
type FetchRequest struct {
	Name string `json:"name"`
}

// FetchResponse carries avatar bytes and their content type.
type FetchResponse struct {
	Data        []byte `json:"data"`
	ContentType string `json:"content_type"`
}

// RemoveRequest represents an avatar removal request.
type RemoveRequest struct {
	Name string `json:"name"`
}

// RemoveResponse represents an avatar removal response.
type RemoveResponse struct {
	Removed bool `json:"removed"`
}
