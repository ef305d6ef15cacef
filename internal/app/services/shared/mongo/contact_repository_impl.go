package mongo

import (
	"context"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/constvars"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"medicenter-service/internal/pkg/exceptions"
)

var (
	contactRepositoryInstance contracts.ContactRepository
	onceContactRepository     sync.Once
)

type contactRepository struct {
	messages    *mongo.Collection
	newsletters *mongo.Collection
}

func NewContactRepository(client *mongo.Client, dbName string) contracts.ContactRepository {
	onceContactRepository.Do(func() {
		db := client.Database(dbName)
		contactRepositoryInstance = &contactRepository{
			messages:    db.Collection(constvars.MongoCollectionContactMessages),
			newsletters: db.Collection(constvars.MongoCollectionNewsletterSignups),
		}
	})
	return contactRepositoryInstance
}

func (r *contactRepository) CreateContactMessage(ctx context.Context, message *models.ContactMessage) (string, error) {
	result, err := r.messages.InsertOne(ctx, message)
	if err != nil {
		return "", exceptions.ErrMongoInsert(err)
	}
	return insertedIDToString(result.InsertedID), nil
}

func (r *contactRepository) CreateNewsletterSignup(ctx context.Context, signup *models.NewsletterSignup) (string, error) {
	result, err := r.newsletters.InsertOne(ctx, signup)
	if err != nil {
		return "", exceptions.ErrMongoInsert(err)
	}
	return insertedIDToString(result.InsertedID), nil
}

func (r *contactRepository) FindNewsletterSignupByEmail(ctx context.Context, email string) (*models.NewsletterSignup, error) {
	var signup models.NewsletterSignup
	err := r.newsletters.FindOne(ctx, bson.M{"email": email}).Decode(&signup)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoFind(err)
	}
	return &signup, nil
}

func insertedIDToString(insertedID interface{}) string {
	if oid, ok := insertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
