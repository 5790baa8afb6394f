package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Zulu-inventor33/alx-files-manager/internal/models"
)

type mongoFileRepo struct {
	col *mongo.Collection
}

func NewMongoFileRepo(db *mongo.Database, collection string) FileRepository {
	return &mongoFileRepo{col: db.Collection(collection)}
}

func (r *mongoFileRepo) Insert(ctx context.Context, f *models.File) (*models.File, error) {
	res, err := r.col.InsertOne(ctx, f)
	if err != nil {
		return nil, err
	}
	f.ID = res.InsertedID.(primitive.ObjectID)
	return f, nil
}

func (r *mongoFileRepo) FindByID(ctx context.Context, id string) (*models.File, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrFileNotFound
	}
	var f models.File
	err = r.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *mongoFileRepo) FindOwned(ctx context.Context, id, userID string) (*models.File, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return nil, err
	}
	var f models.File
	err = r.col.FindOne(ctx, filter).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *mongoFileRepo) SetPublic(ctx context.Context, id, userID string, public bool) error {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return err
	}
	// Atomic last-writer-wins update; concurrent flips on the same record
	// end in exactly one of the requested states.
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"isPublic": public}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrFileNotFound
	}
	return nil
}

func (r *mongoFileRepo) ListByParent(ctx context.Context, userID, parentID string, page int64) ([]models.FileView, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "userId", Value: owner},
			{Key: "parentId", Value: parentID},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
		{{Key: "$skip", Value: page * MaxFilesPerPage}},
		{{Key: "$limit", Value: int64(MaxFilesPerPage)}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "userId", Value: 1},
			{Key: "name", Value: 1},
			{Key: "type", Value: 1},
			{Key: "isPublic", Value: 1},
			{Key: "parentId", Value: 1},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	views := make([]models.FileView, 0, MaxFilesPerPage)
	for cur.Next(ctx) {
		var f models.File
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		views = append(views, f.View())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *mongoFileRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func ownedFilter(id, userID string) (bson.M, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrFileNotFound
	}
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrFileNotFound
	}
	return bson.M{"_id": objID, "userId": owner}, nil
}
