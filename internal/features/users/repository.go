package users

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/odontoforense/api-go/internal/pkg/password"
)

var (
	ErrInvalidID = errors.New("id de usuário inválido")
	ErrNotFound  = errors.New("usuário não encontrado")
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("usuarios")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	return &Repository{collection: collection}
}

// Create hashes the plaintext password and persists the user. The plaintext
// never reaches the store.
func (r *Repository) Create(ctx context.Context, usuario *Usuario) error {
	hashed, err := password.Hash(usuario.Senha)
	if err != nil {
		return err
	}
	usuario.Senha = hashed
	usuario.CreatedAt = time.Now()
	usuario.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, usuario)
	if err != nil {
		return err
	}

	usuario.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Usuario, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var usuario Usuario
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&usuario)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &usuario, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*Usuario, error) {
	var usuario Usuario
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&usuario)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &usuario, nil
}

func (r *Repository) List(ctx context.Context) ([]Usuario, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var usuarios []Usuario
	if err := cursor.All(ctx, &usuarios); err != nil {
		return nil, err
	}

	if usuarios == nil {
		usuarios = []Usuario{}
	}
	return usuarios, nil
}

// Update merges the partial fields and returns the post-update state.
// A supplied senha is re-hashed before it reaches the store; callers must
// have already dropped blank passwords from the update document.
func (r *Repository) Update(ctx context.Context, id string, update bson.M) (*Usuario, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	if senha, ok := update["senha"].(string); ok {
		hashed, err := password.Hash(senha)
		if err != nil {
			return nil, err
		}
		update["senha"] = hashed
	}
	update["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var usuario Usuario
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": update}, opts).Decode(&usuario)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &usuario, nil
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

// Exists reports whether a user with the given id is present
func (r *Repository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
