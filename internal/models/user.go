package models

import "time"

const (
	TierFree = "free"
	TierPaid = "paid"
)

type User struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Email            string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string `gorm:"not null" json:"-"`
	FullName         string `json:"full_name"`
	SubscriptionTier string `gorm:"not null;default:free" json:"subscription_tier"`

	IsMechanic    bool     `gorm:"not null;default:false" json:"is_mechanic"`
	ShopName      string   `json:"shop_name,omitempty"`
	ShopAddress   string   `json:"shop_address,omitempty"`
	ShopPhone     string   `json:"shop_phone,omitempty"`
	Certification string   `json:"certification,omitempty"`
	Specialties   []string `gorm:"serializer:json" json:"specialties,omitempty"`

	NotificationPreferences map[string]bool `gorm:"serializer:json" json:"notification_preferences,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (user *User) IsPaid() bool {
	return user.SubscriptionTier == TierPaid
}
