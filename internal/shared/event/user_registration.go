package event

const UserRegistrationDestination string = "user_registration"

type UserRegistrationMessage struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}
