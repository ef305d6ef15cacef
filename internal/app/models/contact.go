package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Subject   string             `bson:"subject"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type NewsletterSignup struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	CreatedAt time.Time          `bson:"createdAt"`
}
