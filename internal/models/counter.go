package models

// Counter is the single shared record backing sequential team code
// allocation. One document per code namespace.
type Counter struct {
	Name    string `json:"name" bson:"_id"`
	Current int64  `json:"current" bson:"current"`
}
