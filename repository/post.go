package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogapi/models"
)

type postRepository struct {
	coll *mongo.Collection
}

// NewPostRepository creates the MongoDB-backed post gateway.
func NewPostRepository(db *mongo.Database) PostRepository {
	return &postRepository{coll: db.Collection(PostsCollection)}
}

func (r *postRepository) Insert(ctx context.Context, post *models.Post) error {
	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert post: %w", ErrDuplicateKey)
		}
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *postRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	return r.findOne(ctx, bson.M{"post_id": id})
}

func (r *postRepository) FindByTitle(ctx context.Context, title string) (*models.Post, error) {
	return r.findOne(ctx, bson.M{"title": title})
}

func (r *postRepository) findOne(ctx context.Context, filter bson.M) (*models.Post, error) {
	var post models.Post
	err := r.coll.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 0})).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 0}))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) Replace(ctx context.Context, id string, post *models.Post) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"post_id": id}, bson.M{"$set": post})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("replace post: %w", ErrDuplicateKey)
		}
		return fmt.Errorf("replace post: %w", err)
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"post_id": id}); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}
