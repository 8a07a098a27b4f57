package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/dfryer1193/fotostore/images/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var _ domain.ImageRepository = (*MongoImageRepository)(nil)

// MongoImageRepository implements domain.ImageRepository on a MongoDB collection.
// Every operation is a single document call, so atomicity is whatever Mongo gives one document.
type MongoImageRepository struct {
	coll *mongo.Collection
}

// NewMongoImageRepository creates a repository over coll
func NewMongoImageRepository(coll *mongo.Collection) *MongoImageRepository {
	return &MongoImageRepository{
		coll: coll,
	}
}

// InsertImage stores a new image document and returns its ObjectID in hex
func (r *MongoImageRepository) InsertImage(ctx context.Context, img *domain.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("image cannot be nil")
	}

	res, err := r.coll.InsertOne(ctx, newImageDocument(img))
	if err != nil {
		return "", fmt.Errorf("failed to insert image document: %w", err)
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	img.ID = id.Hex()
	return img.ID, nil
}

// FindImage retrieves the first image document with the given filename
func (r *MongoImageRepository) FindImage(ctx context.Context, filename string) (*domain.Image, error) {
	var doc imageDocument
	err := r.coll.FindOne(ctx, byFilename(filename)).Decode(&doc)
	if err != nil {
		return nil, wrapMongoErr(err, filename, "failed to get image")
	}

	return doc.toDomain(), nil
}

// DeleteImage removes the first image document with the given filename and returns it
func (r *MongoImageRepository) DeleteImage(ctx context.Context, filename string) (*domain.Image, error) {
	var doc imageDocument
	err := r.coll.FindOneAndDelete(ctx, byFilename(filename)).Decode(&doc)
	if err != nil {
		return nil, wrapMongoErr(err, filename, "failed to delete image")
	}

	return doc.toDomain(), nil
}

// ReplaceImage overwrites all fields of the first image document with the given filename
func (r *MongoImageRepository) ReplaceImage(ctx context.Context, filename string, img *domain.Image) (*domain.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "filename", Value: img.Filename},
		{Key: "contentType", Value: img.ContentType},
		{Key: "imageBase64", Value: img.ImageBase64},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc imageDocument
	err := r.coll.FindOneAndUpdate(ctx, byFilename(filename), update, opts).Decode(&doc)
	if err != nil {
		return nil, wrapMongoErr(err, filename, "failed to update image")
	}

	return doc.toDomain(), nil
}

func byFilename(filename string) bson.D {
	return bson.D{{Key: "filename", Value: filename}}
}

func wrapMongoErr(err error, filename, msg string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %s", domain.ErrImageNotFound, filename)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// imageDocument is the stored document shape
type imageDocument struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Filename    string        `bson:"filename"`
	ContentType string        `bson:"contentType"`
	ImageBase64 string        `bson:"imageBase64"`
}

func newImageDocument(img *domain.Image) *imageDocument {
	doc := &imageDocument{
		Filename:    img.Filename,
		ContentType: img.ContentType,
		ImageBase64: img.ImageBase64,
	}
	if id, err := bson.ObjectIDFromHex(img.ID); err == nil {
		doc.ID = id
	}
	return doc
}

func (d *imageDocument) toDomain() *domain.Image {
	return &domain.Image{
		ID:          d.ID.Hex(),
		Filename:    d.Filename,
		ContentType: d.ContentType,
		ImageBase64: d.ImageBase64,
	}
}
