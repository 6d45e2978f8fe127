package notification

type SendRequest struct {
	ToUID     string `json:"toUid" binding:"required"`
	RequestID int64  `json:"requestId" binding:"required"`
}
