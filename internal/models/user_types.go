package models

// User is a registered academy owner account.
//
// The password is stored in plaintext by design: this mirrors the mock,
// local-storage auth of the dashboard. There is no real authentication or
// authorization anywhere in the system, so hashing would only pretend
// otherwise. The email is the unique key within the registered set.
type User struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	AcademyName string `json:"academyName"`
}

// Public returns the wire-safe view of the user, without the password.
func (u User) Public() map[string]string {
	return map[string]string{
		"email":       u.Email,
		"academyName": u.AcademyName,
	}
}
