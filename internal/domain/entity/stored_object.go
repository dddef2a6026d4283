package entity

// StoredObjectRef is the handle returned by object storage after an upload.
type StoredObjectRef struct {
	ObjectID string `json:"objectId"`
	MimeType string `json:"mimeType"`
}
