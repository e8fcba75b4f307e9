package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"ask-astro/internal/domain/astrology"
	"ask-astro/internal/domain/profiles"
)

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

func (r *ProfilesRepo) Create(ctx context.Context, p profiles.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (
			user_id, first_name,
			birth_date, birth_time, birth_place,
			partner_name, house_number,
			mobile_number, alternate_number, vehicle_number,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		p.UserID,
		p.FirstName,
		p.BirthDate.Time(),
		p.BirthTime,
		p.BirthPlace,
		p.PartnerName,
		p.HouseNumber,
		p.MobileNumber,
		p.AlternateNumber,
		p.VehicleNumber,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *ProfilesRepo) Update(ctx context.Context, p profiles.Profile) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET
			first_name = $2,
			birth_date = $3,
			birth_time = $4,
			birth_place = $5,
			partner_name = $6,
			house_number = $7,
			mobile_number = $8,
			alternate_number = $9,
			vehicle_number = $10,
			updated_at = $11
		WHERE user_id = $1
	`,
		p.UserID,
		p.FirstName,
		p.BirthDate.Time(),
		p.BirthTime,
		p.BirthPlace,
		p.PartnerName,
		p.HouseNumber,
		p.MobileNumber,
		p.AlternateNumber,
		p.VehicleNumber,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return profiles.ErrNotFound
	}
	return nil
}

func (r *ProfilesRepo) GetByUserID(ctx context.Context, userID string) (profiles.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return profiles.Profile{}, profiles.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			user_id, first_name,
			birth_date, birth_time, birth_place,
			partner_name, house_number,
			mobile_number, alternate_number, vehicle_number,
			created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`, userID)

	var p profiles.Profile
	var bd time.Time
	if err := row.Scan(
		&p.UserID,
		&p.FirstName,
		&bd,
		&p.BirthTime,
		&p.BirthPlace,
		&p.PartnerName,
		&p.HouseNumber,
		&p.MobileNumber,
		&p.AlternateNumber,
		&p.VehicleNumber,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profiles.Profile{}, profiles.ErrNotFound
		}
		return profiles.Profile{}, err
	}

	// birth_date es date; pgx lo mapea a medianoche UTC.
	p.BirthDate = astrology.BirthDateFromTime(bd)
	return p, nil
}
