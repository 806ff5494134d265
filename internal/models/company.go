package models

import "time"

type Company struct {
	ID            int64                 `gorm:"primaryKey" json:"id"`
	Name          string                `gorm:"not null" json:"name"`
	Email         string                `gorm:"uniqueIndex;not null" json:"email"` // normalizado (trim + lower)
	PasswordHash  string                `gorm:"not null" json:"-"`
	Published     bool                  `gorm:"not null" json:"published"`
	CreatedAt     time.Time             `json:"created_at"`
	Accessibility *AccessibilityProfile `gorm:"foreignKey:CompanyID;references:ID" json:"accessibility,omitempty"`
}

func (Company) TableName() string { return "companies" }

type User struct {
	ID        int64      `gorm:"primaryKey" json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Published bool       `json:"published"`
	CreatedAt *time.Time `json:"created_at"` // pode estar ausente em registros antigos
}

func (User) TableName() string { return "users" }
