package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/leaguepulse/leaguepulse/internal/domain/fixture"
)

type scoreDoc struct {
	Home int `bson:"home"`
	Away int `bson:"away"`
}

type fixtureDoc struct {
	ID         string    `bson:"_id"`
	HomeTeamID string    `bson:"home_team"`
	AwayTeamID string    `bson:"away_team"`
	Date       time.Time `bson:"date"`
	Status     string    `bson:"status"`
	Score      scoreDoc  `bson:"score"`
}

func newFixtureDoc(item fixture.Fixture) fixtureDoc {
	return fixtureDoc{
		ID:         item.ID,
		HomeTeamID: item.HomeTeamID,
		AwayTeamID: item.AwayTeamID,
		Date:       item.Date.UTC(),
		Status:     string(item.Status),
		Score:      scoreDoc{Home: item.Score.Home, Away: item.Score.Away},
	}
}

func (d fixtureDoc) toDomain() fixture.Fixture {
	status, ok := fixture.ParseStatus(d.Status)
	if !ok {
		status = fixture.StatusPending
	}
	return fixture.Fixture{
		ID:         d.ID,
		HomeTeamID: d.HomeTeamID,
		AwayTeamID: d.AwayTeamID,
		Date:       d.Date.UTC(),
		Status:     status,
		Score:      fixture.Score{Home: d.Score.Home, Away: d.Score.Away},
	}
}

// The unique compound index closes the check-then-insert race on exact
// duplicates. The 24h clash rule stays application-level; two racing
// creates inside the window can still both land.
func fixtureIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "home_team", Value: 1},
				{Key: "away_team", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
}

type FixtureRepository struct {
	collection *mongo.Collection
}

func NewFixtureRepository(db *mongo.Database) *FixtureRepository {
	return &FixtureRepository{collection: db.Collection(fixtureCollection)}
}

func (r *FixtureRepository) Insert(ctx context.Context, item fixture.Fixture) error {
	if _, err := r.collection.InsertOne(ctx, newFixtureDoc(item)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w (%s vs %s at %s)",
				fixture.ErrDuplicateFixture, item.HomeTeamID, item.AwayTeamID, item.Date.UTC())
		}
		return fmt.Errorf("insert fixture: %w", err)
	}
	return nil
}

func (r *FixtureRepository) GetByID(ctx context.Context, id string) (fixture.Fixture, bool, error) {
	var doc fixtureDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fixture.Fixture{}, false, nil
	}
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("find fixture by id: %w", err)
	}
	return doc.toDomain(), true, nil
}

func (r *FixtureRepository) Update(ctx context.Context, item fixture.Fixture) error {
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": item.ID}, newFixtureDoc(item)); err != nil {
		return fmt.Errorf("update fixture: %w", err)
	}
	return nil
}

func (r *FixtureRepository) UpdateStatus(ctx context.Context, id string, status fixture.Status) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil {
		return fmt.Errorf("update fixture status: %w", err)
	}
	return nil
}

func (r *FixtureRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete fixture: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *FixtureRepository) List(ctx context.Context) ([]fixture.Fixture, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	return decodeFixtures(ctx, cursor)
}

func (r *FixtureRepository) ListInvolving(ctx context.Context, teamIDs []string, from, to time.Time) ([]fixture.Fixture, error) {
	filter := bson.M{
		"date": bson.M{"$gte": from.UTC(), "$lte": to.UTC()},
		"$or": bson.A{
			bson.M{"home_team": bson.M{"$in": teamIDs}},
			bson.M{"away_team": bson.M{"$in": teamIDs}},
		},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list fixtures involving teams: %w", err)
	}
	return decodeFixtures(ctx, cursor)
}

func (r *FixtureRepository) Search(ctx context.Context, filter fixture.SearchFilter) ([]fixture.Fixture, error) {
	query := bson.M{}

	dateRange := bson.M{}
	if !filter.From.IsZero() {
		dateRange["$gte"] = filter.From.UTC()
	}
	if !filter.To.IsZero() {
		dateRange["$lte"] = filter.To.UTC()
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.TeamIDs != nil {
		query["$or"] = bson.A{
			bson.M{"home_team": bson.M{"$in": filter.TeamIDs}},
			bson.M{"away_team": bson.M{"$in": filter.TeamIDs}},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	if filter.Skip > 0 {
		opts.SetSkip(int64(filter.Skip))
	}
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("search fixtures: %w", err)
	}
	return decodeFixtures(ctx, cursor)
}

func decodeFixtures(ctx context.Context, cursor *mongo.Cursor) ([]fixture.Fixture, error) {
	var docs []fixtureDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	out := make([]fixture.Fixture, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}
