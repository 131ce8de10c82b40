package spreadsheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pageza/macro-service/backend/config"
	"github.com/pageza/macro-service/backend/internal/models"
)

// Source yields the raw base food table
type Source interface {
	Load(ctx context.Context) (*Table, error)
}

// NewSource picks the base table source from the configuration: a Google
// Sheets document when GOOGLE_SHEET_ID is set, an S3 object for s3:// paths,
// and a local workbook otherwise.
func NewSource(ctx context.Context, cfg *config.Config) (Source, error) {
	if cfg.GoogleSheetID != "" {
		src, err := NewSheetsSource(ctx, cfg.GoogleCredentialsFile, cfg.GoogleSheetID, cfg.FoodSheet)
		if err != nil {
			return nil, err
		}
		return src, nil
	}

	if bucket, key, ok := ParseS3URL(cfg.FoodDatabasePath); ok {
		s3cfg, err := config.NewS3Config(ctx, cfg.AWSRegion, bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize s3 client: %w", err)
		}
		return S3Object{Fetcher: s3cfg, Bucket: bucket, Key: key, Sheet: cfg.FoodSheet}, nil
	}

	return XLSXFile{Path: cfg.FoodDatabasePath, Sheet: cfg.FoodSheet}, nil
}

// ParseS3URL splits s3://bucket/key into its parts
func ParseS3URL(path string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(path, "s3://")
	if !found {
		return "", "", false
	}
	bucket, key, found = strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

// LoadFoods loads the base food table and reports whether it has a type column
func LoadFoods(ctx context.Context, src Source, cols Columns) ([]models.FoodItem, bool, error) {
	table, err := src.Load(ctx)
	if err != nil {
		return nil, false, err
	}

	foods, err := table.Foods(cols)
	if err != nil {
		return nil, false, err
	}

	log.Info().
		Str("source", fmt.Sprint(src)).
		Int("rows", len(table.Rows)).
		Int("foods", len(foods)).
		Msg("Loaded base food table")
	return foods, table.HasType(cols), nil
}
