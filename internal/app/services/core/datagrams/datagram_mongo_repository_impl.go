package datagrams

import (
	"context"
	"time"

	"lisagent-service/internal/app/contracts"
	"lisagent-service/internal/app/models"
	"lisagent-service/internal/pkg/constvars"
	"lisagent-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DatagramMongoRepository struct {
	Collection *mongo.Collection
}

func NewDatagramMongoRepository(db *mongo.Client, dbName string) contracts.DatagramRepository {
	return &DatagramMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDatagrams),
	}
}

func (r *DatagramMongoRepository) SaveDatagram(ctx context.Context, datagram *models.Datagram) (string, error) {
	result, err := r.Collection.InsertOne(ctx, datagram)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DatagramMongoRepository) FindCreatedAfter(ctx context.Context, cutoff time.Time) ([]models.Datagram, error) {
	filter := bson.M{"createdAt": bson.M{"$gt": cutoff}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var datagrams []models.Datagram
	if err := cursor.All(ctx, &datagrams); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return datagrams, nil
}

func (r *DatagramMongoRepository) FindRepublishCandidates(ctx context.Context, cutoff time.Time) ([]models.Datagram, error) {
	filter := bson.M{
		"matchesPrimaryRoute":  true,
		"uploaded":             false,
		"results":              bson.M{"$size": 1},
		"results.0.completion": bson.M{"$gt": cutoff},
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var datagrams []models.Datagram
	if err := cursor.All(ctx, &datagrams); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return datagrams, nil
}

func (r *DatagramMongoRepository) MarkUploaded(ctx context.Context, datagramID string) error {
	objectID, err := primitive.ObjectIDFromHex(datagramID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{"uploaded": true, "uploadError": false}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
