package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/leaguepulse/leaguepulse/internal/domain/team"
)

type teamDoc struct {
	ID             string `bson:"_id"`
	Name           string `bson:"name"`
	NameNormalized string `bson:"name_normalized"`
	Manager        string `bson:"manager"`
	Stadium        string `bson:"stadium"`
	Logo           string `bson:"logo,omitempty"`
}

func newTeamDoc(item team.Team) teamDoc {
	return teamDoc{
		ID:             item.ID,
		Name:           item.Name,
		NameNormalized: team.NormalizeName(item.Name),
		Manager:        item.Manager,
		Stadium:        item.Stadium,
		Logo:           item.Logo,
	}
}

func (d teamDoc) toDomain() team.Team {
	return team.Team{
		ID:      d.ID,
		Name:    d.Name,
		Manager: d.Manager,
		Stadium: d.Stadium,
		Logo:    d.Logo,
	}
}

func teamIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name_normalized", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
}

type TeamRepository struct {
	collection *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{collection: db.Collection(teamCollection)}
}

func (r *TeamRepository) Insert(ctx context.Context, item team.Team) error {
	if _, err := r.collection.InsertOne(ctx, newTeamDoc(item)); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (team.Team, bool, error) {
	var doc teamDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return team.Team{}, false, nil
	}
	if err != nil {
		return team.Team{}, false, fmt.Errorf("find team by id: %w", err)
	}
	return doc.toDomain(), true, nil
}

func (r *TeamRepository) FindByName(ctx context.Context, name string) (team.Team, bool, error) {
	var doc teamDoc
	err := r.collection.FindOne(ctx, bson.M{"name_normalized": team.NormalizeName(name)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return team.Team{}, false, nil
	}
	if err != nil {
		return team.Team{}, false, fmt.Errorf("find team by name: %w", err)
	}
	return doc.toDomain(), true, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	doc := newTeamDoc(item)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": item.ID}, doc); err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete team: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return decodeTeams(ctx, cursor)
}

func (r *TeamRepository) Search(ctx context.Context, term string, skip, limit int) ([]team.Team, error) {
	filter := bson.M{}
	if term != "" {
		pattern := bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"stadium": pattern},
			bson.M{"manager": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "name_normalized", Value: 1}})
	if skip > 0 {
		opts.SetSkip(int64(skip))
	}
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("search teams: %w", err)
	}
	return decodeTeams(ctx, cursor)
}

func decodeTeams(ctx context.Context, cursor *mongo.Cursor) ([]team.Team, error) {
	var docs []teamDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}
	out := make([]team.Team, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}
