package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
)

const profileCollection = "info"

// ProfileRepository persists eligibility submissions. Append-only: there is
// deliberately no update or delete here.
type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profileCollection)}
}

type mongoProfile struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"user_id"`
	FullName      string             `bson:"full_name"`
	Age           int                `bson:"age"`
	BankAccountNo string             `bson:"bank_account_no"`
	AadhaarNo     string             `bson:"aadhaar_no"`
	PhoneNumber   string             `bson:"phone_number"`
	AnnualIncome  float64            `bson:"annual_income"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (r *ProfileRepository) Insert(ctx context.Context, profile *domain.EligibilityProfile) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoProfile{
		UserID:        profile.UserID,
		FullName:      profile.FullName,
		Age:           profile.Age,
		BankAccountNo: profile.BankAccountNo,
		AadhaarNo:     profile.AadhaarNo,
		PhoneNumber:   profile.PhoneNumber,
		AnnualIncome:  profile.AnnualIncome,
		CreatedAt:     profile.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert profile: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert profile: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindLatestByUser returns the newest submission for the account, descending
// by creation time.
func (r *ProfileRepository) FindLatestByUser(ctx context.Context, userID string) (*domain.EligibilityProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var mp mongoProfile
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find latest profile: %w", err)
	}

	return &domain.EligibilityProfile{
		ID:            mp.ID.Hex(),
		UserID:        mp.UserID,
		FullName:      mp.FullName,
		Age:           mp.Age,
		BankAccountNo: mp.BankAccountNo,
		AadhaarNo:     mp.AadhaarNo,
		PhoneNumber:   mp.PhoneNumber,
		AnnualIncome:  mp.AnnualIncome,
		CreatedAt:     mp.CreatedAt,
	}, nil
}

// EnsureIndexes backs the latest-by-user query.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
