package auth

import "time"

// Session is a persisted admin session. Token is the opaque value the client
// holds; it survives reloads because the session lives in the repository, not
// in process memory.
type Session struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Token     string    `bson:"token" json:"-"`
	Email     string    `bson:"email" json:"email"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
