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

const applicationCollection = "applications"

// ApplicationRepository persists the application ledger.
type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(applicationCollection)}
}

type mongoApplication struct {
	ID             primitive.ObjectID      `bson:"_id,omitempty"`
	SchemeID       string                  `bson:"scheme_id"`
	SchemeName     string                  `bson:"scheme_name"`
	ApplicantName  string                  `bson:"applicant_name"`
	UserID         string                  `bson:"user_id"`
	Status         string                  `bson:"status"`
	SubmissionDate time.Time               `bson:"submission_date"`
	Details        mongoApplicationDetails `bson:"details"`
	ReviewedBy     string                  `bson:"reviewed_by,omitempty"`
}

// mongoApplicationDetails keeps the applicant snapshot typed while letting
// scheme-specific extras flow through the inline map.
type mongoApplicationDetails struct {
	Applicant domain.ApplicantDetails `bson:"applicant_details"`
	Extra     map[string]interface{}  `bson:",inline"`
}

func (r *ApplicationRepository) Insert(ctx context.Context, app *domain.Application) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toMongoApplication(app)
	if err != nil {
		return "", err
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert application: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert application: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *ApplicationRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Application, error) {
	return r.findSorted(ctx, bson.M{"user_id": userID})
}

func (r *ApplicationRepository) FindPending(ctx context.Context) ([]*domain.Application, error) {
	return r.findSorted(ctx, bson.M{"status": string(domain.StatusPending)})
}

func (r *ApplicationRepository) findSorted(ctx context.Context, filter bson.M) ([]*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "submission_date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find applications: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Application
	for cursor.Next(ctx) {
		var ma mongoApplication
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		out = append(out, ma.toDomain())
	}
	return out, cursor.Err()
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	var ma mongoApplication
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return ma.toDomain(), nil
}

// UpdateStatus sets the review decision and reviewer on one application.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, reviewer string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrApplicationNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":      string(status),
		"reviewed_by": reviewer,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

// DeleteAll clears the entire ledger. Administrative reset only.
func (r *ApplicationRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("delete applications: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context, status domain.ApplicationStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"status": string(status)})
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return n, nil
}

// EnsureIndexes backs the per-user listing and the pending queue.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "submission_date", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "submission_date", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func toMongoApplication(app *domain.Application) (*mongoApplication, error) {
	snapshot, extra, err := splitDetails(app.Details)
	if err != nil {
		return nil, err
	}
	return &mongoApplication{
		SchemeID:       app.SchemeID,
		SchemeName:     app.SchemeName,
		ApplicantName:  app.ApplicantName,
		UserID:         app.UserID,
		Status:         string(app.Status),
		SubmissionDate: app.SubmissionDate.UTC(),
		Details:        mongoApplicationDetails{Applicant: snapshot, Extra: extra},
		ReviewedBy:     app.ReviewedBy,
	}, nil
}

// splitDetails separates the mandatory applicant snapshot from any
// scheme-specific extras in the free-form details map.
func splitDetails(details map[string]interface{}) (domain.ApplicantDetails, map[string]interface{}, error) {
	var snapshot domain.ApplicantDetails
	extra := make(map[string]interface{})
	found := false

	for k, v := range details {
		if k == domain.DetailsKeyApplicant {
			s, ok := v.(domain.ApplicantDetails)
			if !ok {
				return snapshot, nil, fmt.Errorf("details.%s has unexpected type %T", domain.DetailsKeyApplicant, v)
			}
			snapshot = s
			found = true
			continue
		}
		extra[k] = v
	}
	if !found {
		return snapshot, nil, fmt.Errorf("details.%s is required", domain.DetailsKeyApplicant)
	}
	return snapshot, extra, nil
}

func (ma *mongoApplication) toDomain() *domain.Application {
	details := make(map[string]interface{}, len(ma.Details.Extra)+1)
	for k, v := range ma.Details.Extra {
		details[k] = v
	}
	details[domain.DetailsKeyApplicant] = ma.Details.Applicant

	return &domain.Application{
		ID:             ma.ID.Hex(),
		SchemeID:       ma.SchemeID,
		SchemeName:     ma.SchemeName,
		ApplicantName:  ma.ApplicantName,
		UserID:         ma.UserID,
		Status:         domain.ApplicationStatus(ma.Status),
		SubmissionDate: ma.SubmissionDate,
		Details:        details,
		ReviewedBy:     ma.ReviewedBy,
	}
}
