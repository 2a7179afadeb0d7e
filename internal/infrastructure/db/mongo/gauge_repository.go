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

	"github.com/gaugeworks/gauge-registry/internal/core/domain"
	"github.com/gaugeworks/gauge-registry/internal/core/ports"
)

const collectionGauges = "gauges"

// GaugeRepository persists gauge records in MongoDB.
type GaugeRepository struct {
	col *mongo.Collection
}

func NewGaugeRepository(db *mongo.Database) *GaugeRepository {
	return &GaugeRepository{col: db.Collection(collectionGauges)}
}

type gaugeDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title"`
	View             string             `bson:"view"`
	Type             string             `bson:"type"`
	Min              float64            `bson:"min"`
	Max              float64            `bson:"max"`
	MeasureUnit      string             `bson:"measure_unit"`
	LowLow           string             `bson:"low_low,omitempty"`
	Low              string             `bson:"low,omitempty"`
	High             string             `bson:"high,omitempty"`
	HighHigh         string             `bson:"high_high,omitempty"`
	Description      string             `bson:"description,omitempty"`
	System           string             `bson:"system"`
	Tag              string             `bson:"tag"`
	Device           string             `bson:"device"`
	ByUser           string             `bson:"by_user"`
	CreatedAt        time.Time          `bson:"created_at"`
	VerificationDate time.Time          `bson:"verification_date,omitempty"`
}

func docFromGauge(g *domain.Gauge) gaugeDoc {
	return gaugeDoc{
		Title:            g.Title,
		View:             g.View,
		Type:             g.Type,
		Min:              g.Min,
		Max:              g.Max,
		MeasureUnit:      g.MeasureUnit,
		LowLow:           g.LowLow,
		Low:              g.Low,
		High:             g.High,
		HighHigh:         g.HighHigh,
		Description:      g.Description,
		System:           g.System,
		Tag:              g.Tag,
		Device:           g.Device,
		ByUser:           g.ByUser,
		CreatedAt:        g.CreatedAt,
		VerificationDate: g.VerificationDate,
	}
}

func (d gaugeDoc) toDomain() *domain.Gauge {
	return &domain.Gauge{
		ID:               d.ID.Hex(),
		Title:            d.Title,
		View:             d.View,
		Type:             d.Type,
		Min:              d.Min,
		Max:              d.Max,
		MeasureUnit:      d.MeasureUnit,
		LowLow:           d.LowLow,
		Low:              d.Low,
		High:             d.High,
		HighHigh:         d.HighHigh,
		Description:      d.Description,
		System:           d.System,
		Tag:              d.Tag,
		Device:           d.Device,
		ByUser:           d.ByUser,
		CreatedAt:        d.CreatedAt,
		VerificationDate: d.VerificationDate,
	}
}

func (r *GaugeRepository) Create(ctx context.Context, g *domain.Gauge) (*domain.Gauge, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, docFromGauge(g))
	if err != nil {
		return nil, fmt.Errorf("insert gauge: %w", err)
	}

	created := *g
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *GaugeRepository) FindByID(ctx context.Context, id string) (*domain.Gauge, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGaugeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d gaugeDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGaugeNotFound
		}
		return nil, fmt.Errorf("find gauge: %w", err)
	}
	return d.toDomain(), nil
}

// Update replaces every editable field of the record; CreatedAt and ByUser
// are preserved from the stored document.
func (r *GaugeRepository) Update(ctx context.Context, id string, g *domain.Gauge) (*domain.Gauge, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGaugeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":             g.Title,
		"view":              g.View,
		"type":              g.Type,
		"min":               g.Min,
		"max":               g.Max,
		"measure_unit":      g.MeasureUnit,
		"low_low":           g.LowLow,
		"low":               g.Low,
		"high":              g.High,
		"high_high":         g.HighHigh,
		"description":       g.Description,
		"system":            g.System,
		"tag":               g.Tag,
		"device":            g.Device,
		"verification_date": g.VerificationDate,
	}}

	var d gaugeDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGaugeNotFound
		}
		return nil, fmt.Errorf("update gauge: %w", err)
	}
	return d.toDomain(), nil
}

func (r *GaugeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGaugeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete gauge: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGaugeNotFound
	}
	return nil
}

// List returns one page of gauge records plus the total count matching the
// filter. A search term restricts by case-insensitive substring match on
// title, tag, system or device.
func (r *GaugeRepository) List(ctx context.Context, filter ports.ListGaugesFilter) ([]*domain.Gauge, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Search != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": rx},
			bson.M{"tag": rx},
			bson.M{"system": rx},
			bson.M{"device": rx},
		}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count gauges: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := int64(filter.Limit)
	if limit <= 0 {
		limit = 10
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(page-1) * limit).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list gauges: %w", err)
	}
	defer cur.Close(ctx)

	var gauges []*domain.Gauge
	for cur.Next(ctx) {
		var d gaugeDoc
		if err := cur.Decode(&d); err != nil {
			return nil, 0, fmt.Errorf("decode gauge: %w", err)
		}
		gauges = append(gauges, d.toDomain())
	}
	return gauges, total, cur.Err()
}

// EnsureIndexes creates the indexes backing the listing and search paths.
func (r *GaugeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "tag", Value: 1}}},
		{Keys: bson.D{{Key: "by_user", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
