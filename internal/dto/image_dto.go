package dto

// SingleImageData carries the public URL of one uploaded image
type SingleImageData struct {
	ImageURL string `json:"imageUrl"`
}

// MultiImageData carries the public URLs of an uploaded image batch
type MultiImageData struct {
	ImageURLs []string `json:"imageUrls"`
}

// UploadErrorDetail describes an upload failure
type UploadErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UploadResponse is the envelope for image upload endpoints
type UploadResponse struct {
	OK    bool               `json:"ok"`
	Data  interface{}        `json:"data,omitempty"`
	Error *UploadErrorDetail `json:"error,omitempty"`
}
