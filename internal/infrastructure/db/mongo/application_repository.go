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

	"github.com/careerhub/job-board-api/internal/core/domain"
	"github.com/careerhub/job-board-api/internal/core/ports"
)

const applicationsCollection = "applications"

type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(applicationsCollection)}
}

type mongoApplication struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	JobID          primitive.ObjectID `bson:"job_id"`
	UserID         primitive.ObjectID `bson:"user_id"`
	Status         string             `bson:"status"`
	CoverLetter    string             `bson:"cover_letter,omitempty"`
	Resume         string             `bson:"resume,omitempty"`
	AdditionalInfo string             `bson:"additional_info,omitempty"`
	AppliedDate    time.Time          `bson:"applied_date"`
	LastUpdated    time.Time          `bson:"last_updated"`
	Notes          string             `bson:"notes,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

type mongoJobSummary struct {
	ID         primitive.ObjectID `bson:"_id"`
	Title      string             `bson:"title"`
	Department string             `bson:"department"`
	Location   string             `bson:"location"`
	Type       string             `bson:"type"`
	Level      string             `bson:"level"`
}

type mongoApplicantSummary struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
}

// mongoApplicationDetail is the aggregation output: the application document
// with the joined job and applicant. Either join may be absent (deleted job,
// deleted user).
type mongoApplicationDetail struct {
	mongoApplication `bson:",inline"`
	Job              *mongoJobSummary       `bson:"job,omitempty"`
	Applicant        *mongoApplicantSummary `bson:"applicant,omitempty"`
}

// Create inserts a new application. The unique (job_id, user_id) index rejects
// a second application atomically at write time.
func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	jobOID, err := primitive.ObjectIDFromHex(app.JobID)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}
	userOID, err := primitive.ObjectIDFromHex(app.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoApplication{
		JobID:          jobOID,
		UserID:         userOID,
		Status:         string(app.Status),
		CoverLetter:    app.CoverLetter,
		Resume:         app.Resume,
		AdditionalInfo: app.AdditionalInfo,
		AppliedDate:    app.AppliedDate,
		LastUpdated:    app.LastUpdated,
		Notes:          app.Notes,
		CreatedAt:      app.CreatedAt,
		UpdatedAt:      app.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyApplied
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}

	created := *app
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoApplication
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return ma.toDomain(), nil
}

// FindDetailByID retrieves a single application joined with its job and applicant.
func (r *ApplicationRepository) FindDetailByID(ctx context.Context, id string) (*domain.ApplicationDetail, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := append(
		mongo.Pipeline{bson.D{{Key: "$match", Value: bson.M{"_id": oid}}}},
		joinStages()...,
	)

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate application: %w", err)
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, fmt.Errorf("aggregate application: %w", err)
		}
		return nil, domain.ErrApplicationNotFound
	}

	var md mongoApplicationDetail
	if err := cur.Decode(&md); err != nil {
		return nil, fmt.Errorf("decode application: %w", err)
	}
	return md.toDetail(), nil
}

// List returns a page of applications matching filter, each joined with its
// job and applicant summaries, sorted by applied date descending.
func (r *ApplicationRepository) List(ctx context.Context, filter ports.ListApplicationsFilter) ([]*domain.ApplicationDetail, int64, error) {
	match, err := buildApplicationQuery(filter)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("count applications: %w", err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "applied_date", Value: -1}}}},
		bson.D{{Key: "$skip", Value: int64((filter.Page - 1) * filter.Limit)}},
		bson.D{{Key: "$limit", Value: int64(filter.Limit)}},
	}
	pipeline = append(pipeline, joinStages()...)

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("aggregate applications: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.ApplicationDetail
	for cur.Next(ctx) {
		var md mongoApplicationDetail
		if err := cur.Decode(&md); err != nil {
			return nil, 0, fmt.Errorf("decode application: %w", err)
		}
		items = append(items, md.toDetail())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate applications: %w", err)
	}

	return items, total, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, notes string) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	set := bson.M{
		"status":       string(status),
		"last_updated": now,
		"updated_at":   now,
	}
	if notes != "" {
		set["notes"] = notes
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ma mongoApplication
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&ma)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("update application status: %w", err)
	}
	return ma.toDomain(), nil
}

// EnsureIndexes creates the unique (job, user) pair index and the query indexes.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "job_id", Value: 1}, {Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "job_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "applied_date", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// joinStages builds the read-time join with jobs and users. preserveNull keeps
// applications whose job or user has since been deleted.
func joinStages() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         jobsCollection,
			"localField":   "job_id",
			"foreignField": "_id",
			"as":           "job",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$job",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "applicant",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$applicant",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

func buildApplicationQuery(f ports.ListApplicationsFilter) (bson.M, error) {
	query := bson.M{}

	if f.UserID != "" {
		oid, err := primitive.ObjectIDFromHex(f.UserID)
		if err != nil {
			return nil, domain.ErrUserNotFound
		}
		query["user_id"] = oid
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.JobID != "" {
		oid, err := primitive.ObjectIDFromHex(f.JobID)
		if err != nil {
			return nil, domain.ErrJobNotFound
		}
		query["job_id"] = oid
	}

	return query, nil
}

func (ma mongoApplication) toDomain() *domain.Application {
	return &domain.Application{
		ID:             ma.ID.Hex(),
		JobID:          ma.JobID.Hex(),
		UserID:         ma.UserID.Hex(),
		Status:         domain.ApplicationStatus(ma.Status),
		CoverLetter:    ma.CoverLetter,
		Resume:         ma.Resume,
		AdditionalInfo: ma.AdditionalInfo,
		AppliedDate:    ma.AppliedDate,
		LastUpdated:    ma.LastUpdated,
		Notes:          ma.Notes,
		CreatedAt:      ma.CreatedAt,
		UpdatedAt:      ma.UpdatedAt,
	}
}

func (md mongoApplicationDetail) toDetail() *domain.ApplicationDetail {
	detail := &domain.ApplicationDetail{Application: *md.mongoApplication.toDomain()}
	if md.Job != nil {
		detail.Job = &domain.JobSummary{
			ID:         md.Job.ID.Hex(),
			Title:      md.Job.Title,
			Department: md.Job.Department,
			Location:   md.Job.Location,
			Type:       domain.JobType(md.Job.Type),
			Level:      domain.JobLevel(md.Job.Level),
		}
	}
	if md.Applicant != nil {
		detail.Applicant = &domain.ApplicantSummary{
			ID:    md.Applicant.ID.Hex(),
			Name:  md.Applicant.Name,
			Email: md.Applicant.Email,
		}
	}
	return detail
}
