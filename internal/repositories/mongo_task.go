package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"daily-planner/internal/models"
)

// MongoTaskRepository が TaskRepository を満たすことを確認します。
var _ TaskRepository = (*MongoTaskRepository)(nil)

// taskDocument は tasks コレクションに保存されるドキュメントです。
type taskDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Date      string             `bson:"date"`
	Todo      string             `bson:"todo"`
	StartTime string             `bson:"startTime"`
	EndTime   string             `bson:"endTime"`
	Priority  string             `bson:"priority,omitempty"`
	Completed bool               `bson:"completed"`
}

func (d *taskDocument) toModel() *models.Task {
	return &models.Task{
		ID:        d.ID.Hex(),
		Date:      d.Date,
		Todo:      d.Todo,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Priority:  models.Priority(d.Priority),
		Completed: d.Completed,
	}
}

// MongoTaskRepository はMongoDBのコレクションを操作します。
// コレクションのハンドルは呼び出し側が所有し、Closeも呼び出し側の責務です。
type MongoTaskRepository struct {
	Collection *mongo.Collection
}

// NewMongoTaskRepository は新しいMongoTaskRepositoryを作成します。
func NewMongoTaskRepository(coll *mongo.Collection) *MongoTaskRepository {
	return &MongoTaskRepository{Collection: coll}
}

// Create はドキュメントを挿入し、採番されたObjectIDをIDにセットします。
func (r *MongoTaskRepository) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	doc := taskDocument{
		ID:        primitive.NewObjectID(),
		Date:      t.Date,
		Todo:      t.Todo,
		StartTime: t.StartTime,
		EndTime:   t.EndTime,
		Priority:  string(t.Priority),
		Completed: t.Completed,
	}
	if _, err := r.Collection.InsertOne(ctx, doc); err != nil {
		log.Printf("Failed to insert task: %v", err)
		return nil, fmt.Errorf("could not insert task: %w", err)
	}
	t.ID = doc.ID.Hex()
	return t, nil
}

// FindAll はすべてのドキュメントを取得します。
func (r *MongoTaskRepository) FindAll(ctx context.Context) ([]*models.Task, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		log.Printf("Failed to query tasks: %v", err)
		return nil, fmt.Errorf("could not query tasks: %w", err)
	}

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		log.Printf("Failed to decode tasks: %v", err)
		return nil, fmt.Errorf("could not decode tasks: %w", err)
	}

	tasks := make([]*models.Task, 0, len(docs))
	for i := range docs {
		tasks = append(tasks, docs[i].toModel())
	}
	return tasks, nil
}

// Delete は指定されたIDのドキュメントを削除します。
// ObjectIDとして解釈できないIDはどのドキュメントにも一致しません。
func (r *MongoTaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrTaskNotFound
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		log.Printf("Failed to delete task: %v", err)
		return fmt.Errorf("could not delete task: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// UpdateCompleted は completed を上書きし、更新後のドキュメントを返します。
func (r *MongoTaskRepository) UpdateCompleted(ctx context.Context, id string, completed bool) (*models.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc taskDocument
	err = r.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"completed": completed}},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		log.Printf("Failed to update task: %v", err)
		return nil, fmt.Errorf("could not update task: %w", err)
	}
	return doc.toModel(), nil
}

// Ping はMongoDBへの接続を確認します。
func (r *MongoTaskRepository) Ping(ctx context.Context) error {
	return r.Collection.Database().Client().Ping(ctx, nil)
}
