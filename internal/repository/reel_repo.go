package repository

import (
	"context"
	"strings"
	"time"

	"reelstream/internal/database"
	"reelstream/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReelFilters narrows List results. Both filters are AND-combined when
// present; matching is case-insensitive (both sides lower-cased).
type ReelFilters struct {
	Hashtag  string
	Username string
	Limit    int
	Skip     int
}

// ReelRepository wraps the reels collection. A repository built from a
// nil client is permanently disconnected: every operation returns its
// zero result instead of an error, so callers can fall back uniformly.
type ReelRepository struct {
	coll *mongo.Collection
}

func NewReelRepository(client *mongo.Client) *ReelRepository {
	if client == nil {
		return &ReelRepository{}
	}
	return &ReelRepository{
		coll: client.Database(database.DatabaseName).Collection(database.CollectionName),
	}
}

func (r *ReelRepository) IsConnected() bool {
	return r.coll != nil
}

// reelDoc pairs the canonical record with the Mongo document id.
type reelDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	domain.Reel `bson:",inline"`
}

func (d reelDoc) toDomain() domain.Reel {
	reel := d.Reel
	reel.ID = d.ID.Hex()
	return reel
}

// EnsureIndexes creates the query and text indexes. Failure is logged
// and non-fatal; the collection still works, only slower.
func (r *ReelRepository) EnsureIndexes(ctx context.Context) {
	if r.coll == nil {
		return
	}

	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "author.username", Value: 1}}},
		{Keys: bson.D{{Key: "hashtags", Value: 1}}},
		{Keys: bson.D{
			{Key: "description", Value: "text"},
			{Key: "author.username", Value: "text"},
			{Key: "hashtags", Value: "text"},
		}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, models); err != nil {
		logrus.WithError(err).Warn("could not create reel indexes")
		return
	}
	logrus.Info("reel indexes ready")
}

// Save inserts a reel, stamping both timestamps, and returns the
// generated id. Unlike the read operations it reports an error on a
// disconnected repository so the caller can degrade the write.
func (r *ReelRepository) Save(ctx context.Context, reel *domain.Reel) (string, error) {
	if r.coll == nil {
		return "", ErrDisconnected
	}

	now := time.Now().UTC()
	reel.CreatedAt = now
	reel.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, reel)
	if err != nil {
		logrus.WithError(err).Error("save reel failed")
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", ErrBadInsertedID
	}
	return oid.Hex(), nil
}

// List returns reels newest-first with optional hashtag/username
// filters. Any store error yields an empty slice.
func (r *ReelRepository) List(ctx context.Context, f ReelFilters) []domain.Reel {
	if r.coll == nil {
		return nil
	}

	query := bson.M{}
	if f.Hashtag != "" {
		query["hashtags"] = bson.M{"$in": []string{strings.ToLower(f.Hashtag)}}
	}
	if f.Username != "" {
		query["author.username"] = strings.ToLower(f.Username)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(f.Skip)).
		SetLimit(int64(f.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		logrus.WithError(err).Error("list reels failed")
		return nil
	}
	defer cur.Close(ctx)

	return decodeReels(ctx, cur)
}

// Like adds userID to the reel's like set. $addToSet makes repeat likes
// by the same user a no-op; the return value reports whether the
// document actually changed.
func (r *ReelRepository) Like(ctx context.Context, reelID, userID string) bool {
	if r.coll == nil {
		return false
	}

	oid, err := primitive.ObjectIDFromHex(reelID)
	if err != nil {
		return false
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$addToSet": bson.M{"likes": userID},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		logrus.WithError(err).Error("like reel failed")
		return false
	}
	return res.ModifiedCount > 0
}

// Comment appends a comment with a fresh id and timestamp. Returns
// whether the parent reel existed.
func (r *ReelRepository) Comment(ctx context.Context, reelID, userID, text string) bool {
	if r.coll == nil {
		return false
	}

	oid, err := primitive.ObjectIDFromHex(reelID)
	if err != nil {
		return false
	}

	comment := domain.Comment{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$push": bson.M{"comments": comment},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		logrus.WithError(err).Error("comment reel failed")
		return false
	}
	return res.MatchedCount > 0
}

// Search runs a full-text query over the combined text index, ordered
// by descending relevance score.
func (r *ReelRepository) Search(ctx context.Context, term string, limit int) []domain.Reel {
	if r.coll == nil {
		return nil
	}

	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{"$text": bson.M{"$search": term}}, opts)
	if err != nil {
		logrus.WithError(err).Error("search reels failed")
		return nil
	}
	defer cur.Close(ctx)

	return decodeReels(ctx, cur)
}

// Stats aggregates collection totals. Average is zero when the
// collection is empty.
func (r *ReelRepository) Stats(ctx context.Context) domain.ReelStats {
	var stats domain.ReelStats
	if r.coll == nil {
		return stats
	}

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		logrus.WithError(err).Error("count reels failed")
		return stats
	}
	stats.TotalReels = total

	pipeline := mongo.Pipeline{
		{{Key: "$project", Value: bson.M{
			"likes_count": bson.M{"$size": bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$likes_count"},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		logrus.WithError(err).Error("aggregate likes failed")
		return stats
	}
	defer cur.Close(ctx)

	var out []struct {
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &out); err != nil {
		logrus.WithError(err).Error("decode likes aggregate failed")
		return stats
	}
	if len(out) > 0 {
		stats.TotalLikes = out[0].Total
	}

	if stats.TotalReels > 0 {
		stats.AvgLikesPerReel = float64(stats.TotalLikes) / float64(stats.TotalReels)
	}
	return stats
}

func decodeReels(ctx context.Context, cur *mongo.Cursor) []domain.Reel {
	var docs []reelDoc
	if err := cur.All(ctx, &docs); err != nil {
		logrus.WithError(err).Error("decode reels failed")
		return nil
	}

	reels := make([]domain.Reel, 0, len(docs))
	for _, d := range docs {
		reels = append(reels, d.toDomain())
	}
	return reels
}
