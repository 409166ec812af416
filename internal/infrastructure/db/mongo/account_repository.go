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

const accountCollection = "users"

type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(accountCollection)}
}

type mongoAccount struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	FullName      string             `bson:"full_name"`
	Role          string             `bson:"role"`
	Panchayat     string             `bson:"panchayat,omitempty"`
	LanguagePref  string             `bson:"language_pref"`
	Ward          string             `bson:"ward,omitempty"`
	Occupation    string             `bson:"occupation,omitempty"`
	Address       string             `bson:"address,omitempty"`
	BankAccountNo string             `bson:"bank_account_no,omitempty"`
	IFSCCode      string             `bson:"ifsc_code,omitempty"`
	PhoneNumber   string             `bson:"phone_number,omitempty"`
	PasswordHash  string             `bson:"hashed_password"`
	IsActive      bool               `bson:"is_active"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAccount{
		Email:         account.Email,
		FullName:      account.FullName,
		Role:          account.Role,
		Panchayat:     account.Panchayat,
		LanguagePref:  account.LanguagePref,
		Ward:          account.Ward,
		Occupation:    account.Occupation,
		Address:       account.Address,
		BankAccountNo: account.BankAccountNo,
		IFSCCode:      account.IFSCCode,
		PhoneNumber:   account.PhoneNumber,
		PasswordHash:  account.PasswordHash,
		IsActive:      account.IsActive,
		CreatedAt:     account.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *account
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoAccount
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var ma mongoAccount
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find account by id: %w", err)
	}
	return ma.toDomain(), nil
}

// UpdateProfile applies a field-level $set. The caller is responsible for
// whitelisting; this layer writes whatever it is given.
func (r *AccountRepository) UpdateProfile(ctx context.Context, email string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update account profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *AccountRepository) ListByRole(ctx context.Context, role string) ([]*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Account
	for cursor.Next(ctx) {
		var ma mongoAccount
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		out = append(out, ma.toDomain())
	}
	return out, cursor.Err()
}

func (r *AccountRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the unique email index.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (ma *mongoAccount) toDomain() *domain.Account {
	return &domain.Account{
		ID:            ma.ID.Hex(),
		Email:         ma.Email,
		FullName:      ma.FullName,
		Role:          ma.Role,
		Panchayat:     ma.Panchayat,
		LanguagePref:  ma.LanguagePref,
		Ward:          ma.Ward,
		Occupation:    ma.Occupation,
		Address:       ma.Address,
		BankAccountNo: ma.BankAccountNo,
		IFSCCode:      ma.IFSCCode,
		PhoneNumber:   ma.PhoneNumber,
		PasswordHash:  ma.PasswordHash,
		IsActive:      ma.IsActive,
		CreatedAt:     ma.CreatedAt,
	}
}
