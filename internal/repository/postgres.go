package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/travel_safety_system/internal/models"
)

// PostgresLedger - леджер инцидентов на PostgreSQL/PostGIS.
// id выдаёт последовательность, reported_at проставляет база -
// сериализация append и монотонность id обеспечиваются СУБД.
type PostgresLedger struct {
	db *pgxpool.Pool
}

// NewPostgresLedger создает леджер поверх пула соединений
func NewPostgresLedger(db *pgxpool.Pool) *PostgresLedger {
	return &PostgresLedger{db: db}
}

// Append сохраняет новый инцидент и возвращает запись с присвоенными id и reported_at
func (l *PostgresLedger) Append(ctx context.Context, draft models.IncidentDraft) (models.Incident, error) {
	if err := models.ValidateCoordinates(draft.Latitude, draft.Longitude); err != nil {
		return models.Incident{}, err
	}

	query := `
		INSERT INTO incidents (location, incident_type, description)
		VALUES (ST_SetSRID(ST_MakePoint($1, $2), 4326), $3, $4)
		RETURNING id, reported_at;
	`
	incident := models.Incident{
		Latitude:     draft.Latitude,
		Longitude:    draft.Longitude,
		IncidentType: draft.IncidentType,
		Description:  draft.Description,
	}
	err := l.db.QueryRow(ctx, query,
		draft.Longitude,
		draft.Latitude,
		string(draft.IncidentType),
		draft.Description,
	).Scan(&incident.ID, &incident.ReportedAt)
	if err != nil {
		return models.Incident{}, fmt.Errorf("failed to append incident: %w", err)
	}
	return incident, nil
}

// QueryRadius возвращает инциденты в радиусе от точки, упорядоченные по id
func (l *PostgresLedger) QueryRadius(ctx context.Context, q models.GeoQuery) ([]models.Incident, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	query := `
		SELECT
			id,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			incident_type,
			description,
			reported_at
		FROM incidents
		WHERE ST_DWithin(
			location,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$3
		)
		ORDER BY id;
	`
	rows, err := l.db.Query(ctx, query, q.Longitude, q.Latitude, q.RadiusKm*1000)
	if err != nil {
		return nil, fmt.Errorf("failed to query incidents by radius: %w", err)
	}
	defer rows.Close()

	incidents := make([]models.Incident, 0)
	for rows.Next() {
		var incident models.Incident
		var incidentType string
		err := rows.Scan(
			&incident.ID,
			&incident.Latitude,
			&incident.Longitude,
			&incidentType,
			&incident.Description,
			&incident.ReportedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incident.IncidentType = models.IncidentType(incidentType)
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating incident rows: %w", err)
	}
	return incidents, nil
}
