package models

// Administrator defines an administrator or head-administrator credential.
// The store key is the username.
type Administrator struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

// Student defines a student account. The store key is ID, which is distinct
// from the display username and never changes once assigned.
type Student struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Password string  `json:"-"`
	Balance  float64 `json:"balance"`
	Address  string  `json:"address"`
	Phone    string  `json:"phone"`
}

// Guidance defines a department reviewer account. The store key is the
// username, so renaming a guidance user moves the record under a new key.
type Guidance struct {
	Username   string `json:"username"`
	Password   string `json:"-"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
}
