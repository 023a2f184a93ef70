package entity

import "time"

// Setting is a process-wide key/value configuration entry (tax rate,
// invoice prefix, company info). Read on demand, never cached.
type Setting struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}
