package models

// User is a registered author stored in the users collection. The document
// carries no storage metadata besides Mongo's own _id, which is projected
// away on every read.
type User struct {
	UserID   string `bson:"user_id" json:"user_id"`
	FullName string `bson:"fullName" json:"fullName"`
	Email    string `bson:"email" json:"email"`
}

// UserPayload is the request body for creating or replacing a user. Both
// fields are mandatory: updates are full overwrites, not patches.
type UserPayload struct {
	FullName string `json:"fullName" binding:"required,min=2,max=100,fullname"`
	Email    string `json:"email" binding:"required,email_format"`
}

// UserList wraps users for the list endpoint.
type UserList struct {
	Users []User `json:"users"`
}
