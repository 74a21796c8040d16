package entity

// User is an account that can sign in. Password holds only a bcrypt hash;
// it is never logged and never returned to callers.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
}
