package models

import "time"

// User is a platform user registered through the Telegram bot.
type User struct {
	ID         int64     `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Phone      string    `json:"phone"`
	City       string    `json:"city"`
	Specialty  string    `json:"specialty"`
	Experience string    `json:"experience"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

// FullName joins first and last name, falling back to the Telegram username.
func (u User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	case u.Username != "":
		return "@" + u.Username
	default:
		return ""
	}
}

// AdminUser is the operator account authenticated against the admin API.
type AdminUser struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
