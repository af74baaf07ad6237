package directory

// User is a CollaboroX account as served by the upstream user collection.
// Users are immutable once fetched; the gateway never writes them back.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
