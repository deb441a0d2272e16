package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
)

const campaignBuildsTable = "campaign_builds"

type CampaignBuildRepository interface {
	CreateBuild(build *domain.CampaignBuild) (*domain.CampaignBuild, error)
	GetBuildByID(buildID string) (*domain.CampaignBuild, error)
	ListBuilds(limit int) ([]*domain.CampaignBuild, error)
}

type campaignBuildRepository struct {
	conn *postgres.Connection
}

func NewCampaignBuildRepository(conn *postgres.Connection) CampaignBuildRepository {
	return &campaignBuildRepository{
		conn: conn,
	}
}

func (r *campaignBuildRepository) CreateBuild(build *domain.CampaignBuild) (*domain.CampaignBuild, error) {
	failuresJSON, err := marshalUploadFailures(build.UploadFailures)
	if err != nil {
		return nil, err
	}

	queryBuilder := squirrel.
		Insert(campaignBuildsTable).
		Columns(
			"id",
			"campaign_id",
			"name",
			"status",
			"ad_set_count",
			"ad_count",
			"images_uploaded",
			"videos_uploaded",
			"upload_failures",
			"error",
		).
		Values(
			build.ID,
			build.CampaignID,
			build.Name,
			build.Status,
			build.AdSetCount,
			build.AdCount,
			build.ImagesUploaded,
			build.VideosUploaded,
			failuresJSON,
			build.Error,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	buildSQL, buildArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(buildSQL, buildArgs...).Scan(&build.CreatedAt)
	if err != nil {
		return nil, err
	}

	return build, nil
}

func (r *campaignBuildRepository) GetBuildByID(buildID string) (*domain.CampaignBuild, error) {
	build, err := scanBuild(r.conn.QueryRow(
		"SELECT id, campaign_id, name, status, ad_set_count, ad_count, images_uploaded, videos_uploaded, upload_failures, error, created_at FROM campaign_builds WHERE id = $1",
		buildID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return build, nil
}

func (r *campaignBuildRepository) ListBuilds(limit int) ([]*domain.CampaignBuild, error) {
	queryBuilder := squirrel.
		Select(
			"id",
			"campaign_id",
			"name",
			"status",
			"ad_set_count",
			"ad_count",
			"images_uploaded",
			"videos_uploaded",
			"upload_failures",
			"error",
			"created_at",
		).
		From(campaignBuildsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	buildSQL, buildArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(buildSQL, buildArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var builds []*domain.CampaignBuild
	for rows.Next() {
		build, err := scanBuild(rows)
		if err != nil {
			return nil, err
		}

		builds = append(builds, build)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return builds, nil
}

// marshalUploadFailures serializa as falhas de upload para a coluna JSONB.
// Sem falhas a coluna fica NULL, não um array vazio.
func marshalUploadFailures(failures []domain.MediaUploadFailure) ([]byte, error) {
	if len(failures) == 0 {
		return nil, nil
	}

	return json.Marshal(failures)
}

func scanBuild(row rowScanner) (*domain.CampaignBuild, error) {
	var build domain.CampaignBuild
	var failuresJSON []byte

	err := row.Scan(
		&build.ID,
		&build.CampaignID,
		&build.Name,
		&build.Status,
		&build.AdSetCount,
		&build.AdCount,
		&build.ImagesUploaded,
		&build.VideosUploaded,
		&failuresJSON,
		&build.Error,
		&build.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(failuresJSON) > 0 {
		if err := json.Unmarshal(failuresJSON, &build.UploadFailures); err != nil {
			return nil, err
		}
	}

	return &build, nil
}
