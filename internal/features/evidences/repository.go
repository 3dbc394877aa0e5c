package evidences

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrInvalidID = errors.New("id de evidência inválido")
	ErrNotFound  = errors.New("evidência não encontrada")
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("evidencias")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "caso", Value: 1}}},
		{Keys: bson.D{{Key: "coletadoPor", Value: 1}}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, evidencia *Evidencia) error {
	if evidencia.Categoria == "" {
		evidencia.Categoria = CategoriaOdontologica
	}
	if evidencia.LocalRetirada == "" {
		evidencia.LocalRetirada = LocalDelegacia
	}
	evidencia.CreatedAt = time.Now()
	evidencia.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, evidencia)
	if err != nil {
		return err
	}

	evidencia.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Evidencia, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var evidencia Evidencia
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&evidencia)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &evidencia, nil
}

func (r *Repository) List(ctx context.Context) ([]Evidencia, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var evidencias []Evidencia
	if err := cursor.All(ctx, &evidencias); err != nil {
		return nil, err
	}

	if evidencias == nil {
		evidencias = []Evidencia{}
	}
	return evidencias, nil
}

func (r *Repository) Update(ctx context.Context, id string, update bson.M) (*Evidencia, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	update["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var evidencia Evidencia
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": update}, opts).Decode(&evidencia)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &evidencia, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
