package models

// AidRequest defines a submitted assistance application. Field order matches
// the persisted JSON document.
type AidRequest struct {
	RequestID   string    `json:"request_id"`
	Username    string    `json:"username"`
	AidType     string    `json:"aid_type"`
	Description string    `json:"description"`
	Documents   []string  `json:"documents"`
	Status      AidStatus `json:"status"`
}
