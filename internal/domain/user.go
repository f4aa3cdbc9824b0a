package domain

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	AvatarURL    string `json:"avatar_url"`
	CreatedOn    string `json:"created_on"`
	UpdatedOn    string `json:"updated_on"`
}

// Party returns the snapshot of this user embedded into rentals and history
// entries.
func (u *User) Party() PartySnapshot {
	return PartySnapshot{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
	}
}

// SystemParty is the acting principal recorded for scheduled transitions.
var SystemParty = PartySnapshot{UserID: "system", Name: "system"}
