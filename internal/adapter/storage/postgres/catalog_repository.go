package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/partassist/internal/domain"
	"github.com/seu-repo/partassist/internal/observability/telemetry"
	"github.com/seu-repo/partassist/internal/ports"
)

// PartRecord is the persisted shape of a catalog part.
type PartRecord struct {
	PartNumber       string   `gorm:"primaryKey"`
	Name             string   `gorm:"index"`
	ApplianceType    string   `gorm:"index"`
	Price            float64
	Stock            string
	ImageURL         string
	CompatibleModels []string `gorm:"serializer:json"`
	Description      string
}

func (PartRecord) TableName() string { return "parts" }

func (r PartRecord) toDomain() domain.Part {
	return domain.Part{
		PartNumber:       r.PartNumber,
		Name:             r.Name,
		ApplianceType:    r.ApplianceType,
		Price:            r.Price,
		Stock:            r.Stock,
		ImageURL:         r.ImageURL,
		CompatibleModels: r.CompatibleModels,
		Description:      r.Description,
	}
}

func recordFrom(p domain.Part) PartRecord {
	return PartRecord{
		PartNumber:       p.PartNumber,
		Name:             p.Name,
		ApplianceType:    p.ApplianceType,
		Price:            p.Price,
		Stock:            p.Stock,
		ImageURL:         p.ImageURL,
		CompatibleModels: p.CompatibleModels,
		Description:      p.Description,
	}
}

type CatalogRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCatalogRepository(db *gorm.DB, log *zap.Logger) ports.Catalog {
	return &CatalogRepository{
		db:  db,
		log: log,
	}
}

// SavePart upserts a part, used by the ingest command.
func (r *CatalogRepository) SavePart(ctx context.Context, part domain.Part) error {
	rec := recordFrom(part)
	return r.db.WithContext(ctx).Save(&rec).Error
}

func (r *CatalogRepository) FindPart(ctx context.Context, partNumber string) (*domain.Part, error) {
	defer observe(time.Now())
	var rec PartRecord
	err := r.db.WithContext(ctx).First(&rec, "part_number = ?", strings.ToUpper(partNumber)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	part := rec.toDomain()
	return &part, nil
}

func (r *CatalogRepository) SearchParts(ctx context.Context, query, applianceType string, limit int) ([]domain.Part, error) {
	defer observe(time.Now())
	q := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like(query), like(query))
	if applianceType != "" {
		q = q.Where("appliance_type = ?", applianceType)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var recs []PartRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(recs), nil
}

func (r *CatalogRepository) FindByModel(ctx context.Context, modelNumber string, limit int) ([]domain.Part, error) {
	defer observe(time.Now())
	// compatible_models is a JSON array of model strings.
	q := r.db.WithContext(ctx).
		Where("jsonb_exists(compatible_models::jsonb, ?)", strings.ToUpper(modelNumber))
	if limit > 0 {
		q = q.Limit(limit)
	}
	var recs []PartRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(recs), nil
}

func (r *CatalogRepository) CheckCompatibility(ctx context.Context, partNumber, modelNumber string) (bool, error) {
	part, err := r.FindPart(ctx, partNumber)
	if err != nil || part == nil {
		return false, err
	}
	for _, compat := range part.CompatibleModels {
		if strings.EqualFold(compat, modelNumber) {
			return true, nil
		}
	}
	return false, nil
}

func (r *CatalogRepository) PopularParts(ctx context.Context, applianceType string, limit int) ([]domain.Part, error) {
	defer observe(time.Now())
	q := r.db.WithContext(ctx).Order("part_number")
	if applianceType != "" {
		q = q.Where("appliance_type = ?", applianceType)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var recs []PartRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(recs), nil
}

func observe(start time.Time) {
	telemetry.CatalogLatency.Observe(time.Since(start).Seconds())
}

func like(query string) string {
	return "%" + strings.ToLower(query) + "%"
}

func toDomainSlice(recs []PartRecord) []domain.Part {
	out := make([]domain.Part, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out
}
