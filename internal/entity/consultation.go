package entity

// Consultation is one form submission. It lives only for the duration of
// the request that carried it and is never persisted.
type Consultation struct {
	Name    string
	Email   string
	Company string // optional, rendered as "Not provided" when empty
	Message string
}
