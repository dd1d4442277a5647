package models

// Subscription: направленная связь "UserID подписан на SubID".
type Subscription struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	SubID  int64 `json:"sub_id"`
}

// Profile: представление пользователя с признаком подписки на него
// со стороны просматривающего.
type Profile struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// NewProfile собирает Profile из пользователя.
func NewProfile(u *User, isSubscribed bool) Profile {
	return Profile{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}
