package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	_ "github.com/lib/pq"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
)

const scheduledLaunchesTable = "scheduled_launches"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ScheduledLaunchRepository interface {
	CreateLaunch(launch *domain.ScheduledLaunch) (*domain.ScheduledLaunch, error)
	GetLaunchByID(launchID string) (*domain.ScheduledLaunch, error)
	ListLaunches(limit int) ([]*domain.ScheduledLaunch, error)
	ListDueLaunches(now time.Time, limit int) ([]*domain.ScheduledLaunch, error)
	UpdateLaunchStatus(launchID string, status domain.LaunchStatus, buildID *string, launchErr *string) error
}

type scheduledLaunchRepository struct {
	conn *postgres.Connection
}

func NewScheduledLaunchRepository(conn *postgres.Connection) ScheduledLaunchRepository {
	return &scheduledLaunchRepository{
		conn: conn,
	}
}

func (r *scheduledLaunchRepository) CreateLaunch(launch *domain.ScheduledLaunch) (*domain.ScheduledLaunch, error) {
	requestJSON, err := json.Marshal(launch.Request)
	if err != nil {
		return nil, err
	}

	queryBuilder := squirrel.
		Insert(scheduledLaunchesTable).
		Columns("id", "name", "run_at", "request", "status").
		Values(launch.ID, launch.Name, launch.RunAt, requestJSON, launch.Status).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	launchSQL, launchArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(launchSQL, launchArgs...).Scan(&launch.CreatedAt, &launch.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return launch, nil
}

func (r *scheduledLaunchRepository) GetLaunchByID(launchID string) (*domain.ScheduledLaunch, error) {
	row := r.conn.QueryRow(
		"SELECT id, name, run_at, request, status, build_id, error, created_at, updated_at FROM scheduled_launches WHERE id = $1",
		launchID,
	)

	launch, err := scanLaunch(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return launch, nil
}

func (r *scheduledLaunchRepository) ListLaunches(limit int) ([]*domain.ScheduledLaunch, error) {
	queryBuilder := squirrel.
		Select("id", "name", "run_at", "request", "status", "build_id", "error", "created_at", "updated_at").
		From(scheduledLaunchesTable).
		OrderBy("run_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	return r.queryLaunches(queryBuilder)
}

// ListDueLaunches retorna os lançamentos pendentes cujo horário de execução já
// passou, do mais antigo para o mais recente
func (r *scheduledLaunchRepository) ListDueLaunches(now time.Time, limit int) ([]*domain.ScheduledLaunch, error) {
	queryBuilder := squirrel.
		Select("id", "name", "run_at", "request", "status", "build_id", "error", "created_at", "updated_at").
		From(scheduledLaunchesTable).
		Where(squirrel.Eq{"status": domain.LaunchStatusPending}).
		Where(squirrel.LtOrEq{"run_at": now}).
		OrderBy("run_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	return r.queryLaunches(queryBuilder)
}

func (r *scheduledLaunchRepository) UpdateLaunchStatus(launchID string, status domain.LaunchStatus, buildID *string, launchErr *string) error {
	queryBuilder := squirrel.
		Update(scheduledLaunchesTable).
		Set("status", status).
		Set("build_id", buildID).
		Set("error", launchErr).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": launchID}).
		PlaceholderFormat(squirrel.Dollar)

	launchSQL, launchArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(launchSQL, launchArgs...)
	if err != nil {
		return err
	}

	return nil
}

func (r *scheduledLaunchRepository) queryLaunches(queryBuilder squirrel.SelectBuilder) ([]*domain.ScheduledLaunch, error) {
	launchSQL, launchArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(launchSQL, launchArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var launches []*domain.ScheduledLaunch
	for rows.Next() {
		launch, err := scanLaunch(rows)
		if err != nil {
			return nil, err
		}

		launches = append(launches, launch)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return launches, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLaunch(row rowScanner) (*domain.ScheduledLaunch, error) {
	var launch domain.ScheduledLaunch
	var requestJSON []byte

	err := row.Scan(
		&launch.ID,
		&launch.Name,
		&launch.RunAt,
		&requestJSON,
		&launch.Status,
		&launch.BuildID,
		&launch.Error,
		&launch.CreatedAt,
		&launch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(requestJSON) > 0 {
		if err := json.Unmarshal(requestJSON, &launch.Request); err != nil {
			return nil, err
		}
	}

	return &launch, nil
}
