package mongodb

import (
	"context"

	"job-portal-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type jobRepo struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) domain.JobRepository {
	return &jobRepo{coll: db.Collection(collJobs)}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	job.Requirements = nonNil(job.Requirements)
	_, err := r.coll.InsertOne(ctx, job)
	return mapError(err)
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	return findOne[domain.Job](ctx, r.coll, id)
}

func (r *jobRepo) List(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, int64, error) {
	return findPage[domain.Job](ctx, r.coll, jobFilter(filter), newestFirst("created_at"), limit, offset)
}

func (r *jobRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Job, error) {
	return findAll[domain.Job](ctx, r.coll, bson.M{"user_id": ownerID}, options.Find().SetSort(newestFirst("created_at")))
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	job.Requirements = nonNil(job.Requirements)
	return replaceByID(ctx, r.coll, job.ID, job)
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

type projectRepo struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) domain.ProjectRepository {
	return &projectRepo{coll: db.Collection(collProjects)}
}

func (r *projectRepo) Create(ctx context.Context, p *domain.Project) error {
	p.Skills = nonNil(p.Skills)
	_, err := r.coll.InsertOne(ctx, p)
	return mapError(err)
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return findOne[domain.Project](ctx, r.coll, id)
}

func (r *projectRepo) List(ctx context.Context, limit, offset int) ([]domain.Project, int64, error) {
	return findPage[domain.Project](ctx, r.coll, bson.M{}, newestFirst("created_at"), limit, offset)
}

func (r *projectRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Project, error) {
	return findAll[domain.Project](ctx, r.coll, bson.M{"user_id": ownerID}, options.Find().SetSort(newestFirst("created_at")))
}

func (r *projectRepo) Update(ctx context.Context, p *domain.Project) error {
	p.Skills = nonNil(p.Skills)
	return replaceByID(ctx, r.coll, p.ID, p)
}

func (r *projectRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

type experienceRepo struct {
	coll *mongo.Collection
}

func NewExperienceRepository(db *mongo.Database) domain.ExperienceRepository {
	return &experienceRepo{coll: db.Collection(collExperiences)}
}

func (r *experienceRepo) Create(ctx context.Context, e *domain.Experience) error {
	_, err := r.coll.InsertOne(ctx, e)
	return mapError(err)
}

func (r *experienceRepo) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	return findOne[domain.Experience](ctx, r.coll, id)
}

func (r *experienceRepo) List(ctx context.Context, limit, offset int) ([]domain.Experience, int64, error) {
	return findPage[domain.Experience](ctx, r.coll, bson.M{}, newestFirst("created_at"), limit, offset)
}

func (r *experienceRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Experience, error) {
	sort := bson.D{{Key: "from_year", Value: -1}, {Key: "created_at", Value: -1}}
	return findAll[domain.Experience](ctx, r.coll, bson.M{"user_id": ownerID}, options.Find().SetSort(sort))
}

func (r *experienceRepo) Update(ctx context.Context, e *domain.Experience) error {
	return replaceByID(ctx, r.coll, e.ID, e)
}

func (r *experienceRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
