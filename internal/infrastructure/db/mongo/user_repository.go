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
)

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type mongoProfile struct {
	Phone      string   `bson:"phone,omitempty"`
	Location   string   `bson:"location,omitempty"`
	Resume     string   `bson:"resume,omitempty"`
	Skills     []string `bson:"skills,omitempty"`
	Experience string   `bson:"experience,omitempty"`
	Education  string   `bson:"education,omitempty"`
	LinkedIn   string   `bson:"linked_in,omitempty"`
	GitHub     string   `bson:"github,omitempty"`
	Portfolio  string   `bson:"portfolio,omitempty"`
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	Profile      *mongoProfile      `bson:"profile,omitempty"`
	IsActive     bool               `bson:"is_active"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		Profile:      toMongoProfile(user.Profile),
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

// EnsureIndexes creates the unique email index. Emails are stored lowercased,
// so the unique index is effectively case-insensitive.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (mu mongoUser) toDomain() *domain.User {
	u := &domain.User{
		ID:           mu.ID.Hex(),
		Name:         mu.Name,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Role:         mu.Role,
		IsActive:     mu.IsActive,
		CreatedAt:    mu.CreatedAt,
		UpdatedAt:    mu.UpdatedAt,
	}
	if mu.Profile != nil {
		u.Profile = &domain.Profile{
			Phone:      mu.Profile.Phone,
			Location:   mu.Profile.Location,
			Resume:     mu.Profile.Resume,
			Skills:     mu.Profile.Skills,
			Experience: mu.Profile.Experience,
			Education:  mu.Profile.Education,
			LinkedIn:   mu.Profile.LinkedIn,
			GitHub:     mu.Profile.GitHub,
			Portfolio:  mu.Profile.Portfolio,
		}
	}
	return u
}

func toMongoProfile(p *domain.Profile) *mongoProfile {
	if p == nil {
		return nil
	}
	return &mongoProfile{
		Phone:      p.Phone,
		Location:   p.Location,
		Resume:     p.Resume,
		Skills:     p.Skills,
		Experience: p.Experience,
		Education:  p.Education,
		LinkedIn:   p.LinkedIn,
		GitHub:     p.GitHub,
		Portfolio:  p.Portfolio,
	}
}
