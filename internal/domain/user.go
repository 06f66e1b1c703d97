package domain

// User Model
type User struct {
	ID    uint    `gorm:"primaryKey" json:"id"`                       // Primary key
	Email string  `gorm:"size:255;uniqueIndex;not null" json:"email"` // Unique, lower-cased email
	Salt  string  `gorm:"size:64;not null" json:"-"`                  // Hex encoded password salt
	Hash  string  `gorm:"size:128;not null" json:"-"`                 // Hex encoded PBKDF2 digest
	Token *string `gorm:"size:64;uniqueIndex" json:"-"`               // Current bearer token, nil until issued
}
