package model

// FileInfo describes where an uploaded file ended up on disk. It is
// returned to the client and never persisted.
type FileInfo struct {
	Path string `json:"path"`
}
