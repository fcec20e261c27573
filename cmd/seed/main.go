package main

import (
	"context"
	"log"
	"time"

	"eventteams/internal/config"
	"eventteams/internal/database"
	"eventteams/internal/models"
	"eventteams/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	if err := database.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	eventID := seedEvent(ctx, mongoDB.Database)
	userIDs := seedUsers(ctx, mongoDB.Database)
	seedRegistrations(ctx, mongoDB.Database, eventID, userIDs)

	log.Println("Seed completed successfully!")
}

func seedEvent(ctx context.Context, db *mongo.Database) primitive.ObjectID {
	collection := db.Collection("events")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear events: %v", err)
	}

	event := models.Event{
		Name:            "Hack the Term 2026",
		Slug:            "hack-the-term-2026",
		TeamSizeDefault: 4,
		TeamSizeMax:     6,
		StartsAt:        time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
		CreatedAt:       time.Now(),
	}

	result, err := collection.InsertOne(ctx, event)
	if err != nil {
		log.Fatalf("Failed to seed event: %v", err)
	}

	id := result.InsertedID.(primitive.ObjectID)
	log.Printf("Seeded event %s (%s)", event.Name, id.Hex())
	return id
}

func seedUsers(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("users")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	password, _ := auth.HashPassword("password123")
	now := time.Now()

	seeds := []struct {
		email, name, uniqueID, org, phone string
	}{
		{"alice@example.com", "Alice Johnson", "EVT1001", "Acme University", "+15550101"},
		{"bob@example.com", "Bob Smith", "EVT1002", "Globex Institute", "+15550102"},
		{"carol@example.com", "Carol Nguyen", "EVT1003", "Acme University", "+15550103"},
		{"dave@example.com", "Dave Okafor", "EVT1004", "Initech College", "+15550104"},
	}

	users := make([]interface{}, 0, len(seeds))
	for _, s := range seeds {
		users = append(users, models.User{
			Email:        s.email,
			Password:     password,
			Name:         s.name,
			UniqueID:     s.uniqueID,
			Organization: s.org,
			Phone:        s.phone,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded %d users", len(result.InsertedIDs))

	var userIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		userIDs = append(userIDs, id.(primitive.ObjectID))
	}
	return userIDs
}

func seedRegistrations(ctx context.Context, db *mongo.Database, eventID primitive.ObjectID, userIDs []primitive.ObjectID) {
	collection := db.Collection("registrations")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear registrations: %v", err)
	}

	now := time.Now()
	registrations := make([]interface{}, 0, len(userIDs))
	for _, uid := range userIDs {
		registrations = append(registrations, models.Registration{
			EventID:   eventID,
			UserID:    uid,
			CreatedAt: now,
		})
	}

	result, err := collection.InsertMany(ctx, registrations)
	if err != nil {
		log.Fatalf("Failed to seed registrations: %v", err)
	}

	log.Printf("Seeded %d registrations", len(result.InsertedIDs))
}
