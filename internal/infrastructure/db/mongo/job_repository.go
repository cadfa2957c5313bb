package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careerhub/job-board-api/internal/core/domain"
	"github.com/careerhub/job-board-api/internal/core/ports"
)

const jobsCollection = "jobs"

type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

type mongoSalary struct {
	Min      int    `bson:"min"`
	Max      int    `bson:"max"`
	Currency string `bson:"currency"`
}

type mongoJob struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	Title               string             `bson:"title"`
	Department          string             `bson:"department"`
	Location            string             `bson:"location"`
	Type                string             `bson:"type"`
	Level               string             `bson:"level"`
	Description         string             `bson:"description"`
	Requirements        []string           `bson:"requirements"`
	Responsibilities    []string           `bson:"responsibilities"`
	Benefits            []string           `bson:"benefits,omitempty"`
	Skills              []string           `bson:"skills"`
	Salary              *mongoSalary       `bson:"salary,omitempty"`
	IsActive            bool               `bson:"is_active"`
	Featured            bool               `bson:"featured"`
	PostedDate          time.Time          `bson:"posted_date"`
	ApplicationDeadline *time.Time         `bson:"application_deadline,omitempty"`
	CreatedAt           time.Time          `bson:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at"`
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toMongoJob(job))
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindByID retrieves a job by id. A malformed hex id is reported as not found,
// matching how unknown ids behave.
func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mj mongoJob
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mj); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return mj.toDomain(), nil
}

// List returns a page of active jobs matching filter, sorted featured-first
// then posted date descending, plus the total matching count.
func (r *JobRepository) List(ctx context.Context, filter ports.ListJobsFilter) ([]*domain.Job, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := buildJobQuery(filter)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "featured", Value: -1}, {Key: "posted_date", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find jobs: %w", err)
	}
	defer cur.Close(ctx)

	var jobs []*domain.Job
	for cur.Next(ctx) {
		var mj mongoJob
		if err := cur.Decode(&mj); err != nil {
			return nil, 0, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, mj.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate jobs: %w", err)
	}

	return jobs, total, nil
}

// Update applies a partial $set and refreshes updated_at.
func (r *JobRepository) Update(ctx context.Context, id string, upd ports.JobUpdate) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Department != nil {
		set["department"] = *upd.Department
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.Level != nil {
		set["level"] = *upd.Level
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Requirements != nil {
		set["requirements"] = upd.Requirements
	}
	if upd.Responsibilities != nil {
		set["responsibilities"] = upd.Responsibilities
	}
	if upd.Benefits != nil {
		set["benefits"] = upd.Benefits
	}
	if upd.Skills != nil {
		set["skills"] = upd.Skills
	}
	if upd.Salary != nil {
		set["salary"] = mongoSalary{Min: upd.Salary.Min, Max: upd.Salary.Max, Currency: upd.Salary.Currency}
	}
	if upd.IsActive != nil {
		set["is_active"] = *upd.IsActive
	}
	if upd.Featured != nil {
		set["featured"] = *upd.Featured
	}
	if upd.ApplicationDeadline != nil {
		set["application_deadline"] = upd.ApplicationDeadline.UTC()
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mj mongoJob
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&mj)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return mj.toDomain(), nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// EnsureIndexes creates the listing indexes on the jobs collection.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "department", Value: 1}, {Key: "is_active", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: 1}, {Key: "is_active", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "is_active", Value: 1}}},
		{Keys: bson.D{{Key: "level", Value: 1}, {Key: "is_active", Value: 1}}},
		{Keys: bson.D{{Key: "featured", Value: 1}, {Key: "is_active", Value: 1}}},
		{Keys: bson.D{{Key: "posted_date", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// buildJobQuery translates the filter into a Mongo query. Only active jobs are
// ever eligible for the public listing.
func buildJobQuery(f ports.ListJobsFilter) bson.M {
	query := bson.M{"is_active": true}

	if f.Department != "" {
		query["department"] = f.Department
	}
	if f.Location != "" {
		query["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Location), Options: "i"}
	}
	if f.Type != "" {
		query["type"] = f.Type
	}
	if f.Level != "" {
		query["level"] = f.Level
	}
	if f.FeaturedOnly {
		query["featured"] = true
	}
	if f.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
			bson.M{"skills": bson.M{"$in": bson.A{re}}},
		}
	}

	return query
}

func toMongoJob(j *domain.Job) mongoJob {
	mj := mongoJob{
		Title:            j.Title,
		Department:       j.Department,
		Location:         j.Location,
		Type:             string(j.Type),
		Level:            string(j.Level),
		Description:      j.Description,
		Requirements:     j.Requirements,
		Responsibilities: j.Responsibilities,
		Benefits:         j.Benefits,
		Skills:           j.Skills,
		IsActive:         j.IsActive,
		Featured:         j.Featured,
		PostedDate:       j.PostedDate,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
	if j.Salary != nil {
		mj.Salary = &mongoSalary{Min: j.Salary.Min, Max: j.Salary.Max, Currency: j.Salary.Currency}
	}
	if j.ApplicationDeadline != nil {
		d := j.ApplicationDeadline.UTC()
		mj.ApplicationDeadline = &d
	}
	return mj
}

func (mj mongoJob) toDomain() *domain.Job {
	j := &domain.Job{
		ID:                  mj.ID.Hex(),
		Title:               mj.Title,
		Department:          mj.Department,
		Location:            mj.Location,
		Type:                domain.JobType(mj.Type),
		Level:               domain.JobLevel(mj.Level),
		Description:         mj.Description,
		Requirements:        mj.Requirements,
		Responsibilities:    mj.Responsibilities,
		Benefits:            mj.Benefits,
		Skills:              mj.Skills,
		IsActive:            mj.IsActive,
		Featured:            mj.Featured,
		PostedDate:          mj.PostedDate,
		ApplicationDeadline: mj.ApplicationDeadline,
		CreatedAt:           mj.CreatedAt,
		UpdatedAt:           mj.UpdatedAt,
	}
	if mj.Salary != nil {
		j.Salary = &domain.Salary{Min: mj.Salary.Min, Max: mj.Salary.Max, Currency: mj.Salary.Currency}
	}
	return j
}
