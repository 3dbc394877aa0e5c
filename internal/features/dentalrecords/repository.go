package dentalrecords

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
	ErrInvalidID = errors.New("id de registro inválido")
	ErrNotFound  = errors.New("registro não encontrado")
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("bancoodontos")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "tipodoregistro", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, registro *Registro) error {
	if registro.Status == "" {
		registro.Status = StatusIdentificado
	}
	if registro.DataRegistro.IsZero() {
		registro.DataRegistro = time.Now()
	}
	registro.CreatedAt = time.Now()
	registro.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, registro)
	if err != nil {
		return err
	}

	registro.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Registro, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var registro Registro
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&registro)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &registro, nil
}

func (r *Repository) List(ctx context.Context) ([]Registro, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var registros []Registro
	if err := cursor.All(ctx, &registros); err != nil {
		return nil, err
	}

	if registros == nil {
		registros = []Registro{}
	}
	return registros, nil
}

func (r *Repository) Update(ctx context.Context, id string, update bson.M) (*Registro, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	update["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var registro Registro
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": update}, opts).Decode(&registro)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &registro, nil
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
