package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
)

const schemeCollection = "schemes"

// SchemeRepository persists the welfare scheme catalog. Migration-era
// documents carry either a plain string _id or a native ObjectID, so reads
// tolerate both.
type SchemeRepository struct {
	coll *mongo.Collection
}

func NewSchemeRepository(db *mongo.Database) *SchemeRepository {
	return &SchemeRepository{coll: db.Collection(schemeCollection)}
}

type mongoScheme struct {
	ID                  interface{} `bson:"_id,omitempty"`
	Name                string      `bson:"name"`
	Description         string      `bson:"description"`
	BeneficiaryCategory []string    `bson:"beneficiary_category"`
	EligibilityCriteria string      `bson:"eligibility_criteria"`
	DocumentsRequired   []string    `bson:"documents_required"`
	Benefits            string      `bson:"benefits"`
	ApplicationProcess  string      `bson:"application_process"`
	Department          string      `bson:"department,omitempty"`
	CreatedAt           time.Time   `bson:"created_at"`
}

func (r *SchemeRepository) Insert(ctx context.Context, scheme *domain.Scheme) (*domain.Scheme, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoScheme{
		Name:                scheme.Name,
		Description:         scheme.Description,
		BeneficiaryCategory: scheme.BeneficiaryCategory,
		EligibilityCriteria: scheme.EligibilityCriteria,
		DocumentsRequired:   scheme.DocumentsRequired,
		Benefits:            scheme.Benefits,
		ApplicationProcess:  scheme.ApplicationProcess,
		Department:          scheme.Department,
		CreatedAt:           scheme.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert scheme: %w", err)
	}

	created := *scheme
	created.ID = idToString(res.InsertedID)
	return &created, nil
}

func (r *SchemeRepository) FindAll(ctx context.Context) ([]*domain.Scheme, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list schemes: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Scheme
	for cursor.Next(ctx) {
		var ms mongoScheme
		if err := cursor.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode scheme: %w", err)
		}
		out = append(out, ms.toDomain())
	}
	return out, cursor.Err()
}

// FindByID tries the exact string _id first, then the 24-hex ObjectID
// decoding of the same identifier, before giving up with ErrSchemeNotFound.
func (r *SchemeRepository) FindByID(ctx context.Context, id string) (*domain.Scheme, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoScheme
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ms)
	if err == nil {
		return ms.toDomain(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("find scheme: %w", err)
	}

	if oid, oidErr := primitive.ObjectIDFromHex(id); oidErr == nil {
		err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms)
		if err == nil {
			return ms.toDomain(), nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("find scheme: %w", err)
		}
	}

	return nil, domain.ErrSchemeNotFound
}

func (r *SchemeRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count schemes: %w", err)
	}
	return n, nil
}

func (ms *mongoScheme) toDomain() *domain.Scheme {
	return &domain.Scheme{
		ID:                  idToString(ms.ID),
		Name:                ms.Name,
		Description:         ms.Description,
		BeneficiaryCategory: ms.BeneficiaryCategory,
		EligibilityCriteria: ms.EligibilityCriteria,
		DocumentsRequired:   ms.DocumentsRequired,
		Benefits:            ms.Benefits,
		ApplicationProcess:  ms.ApplicationProcess,
		Department:          ms.Department,
		CreatedAt:           ms.CreatedAt,
	}
}

// idToString flattens a raw _id to its string form regardless of whether the
// document stores a plain string or a native ObjectID.
func idToString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
