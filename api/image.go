package api

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Err string `json:"err"`
}

const (
	MsgUploaded    = "Image uploaded successfully"
	MsgDeleted     = "Image deleted successfully"
	MsgUpdated     = "Image updated successfully"
	MsgNoFile      = "No file uploaded."
	MsgFileMissing = "No file exists"
)
