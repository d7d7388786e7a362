package models

// AuditLog records mutating user operations.
type AuditLog struct {
	Base
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	Action    string `gorm:"not null" json:"action"`
	Entity    string `gorm:"not null" json:"entity"`
	EntityID  uint   `json:"entity_id"`
	IPAddress string `json:"ip_address"`
	Changes   string `json:"changes,omitempty"`
}
