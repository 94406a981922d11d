package internal

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore implements Store on a postgres pool.
type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

/* ===================== SQUIRREL HELPERS ===================== */

func (s *PGStore) qExec(ctx context.Context, q sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return s.db.Exec(ctx, sql, args...)
}

func (s *PGStore) qQuery(ctx context.Context, q sq.SelectBuilder) (pgx.Rows, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return s.db.Query(ctx, sql, args...)
}

func (s *PGStore) qRow(ctx context.Context, q sq.Sqlizer) pgx.Row {
	sql, args, _ := q.ToSql()
	return s.db.QueryRow(ctx, sql, args...)
}

func notFoundOnNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

/* ===================== USERS ===================== */

func (s *PGStore) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := s.qRow(ctx, psql.
		Select("id", "username", "pass_hash").
		From("users").
		Where(sq.Eq{"username": username}),
	).Scan(&u.ID, &u.Username, &u.PassHash)
	return u, notFoundOnNoRows(err)
}

func (s *PGStore) UpsertUser(ctx context.Context, username, passHash string) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO users(username, pass_hash) VALUES ($1,$2)
		 ON CONFLICT(username) DO UPDATE SET pass_hash=excluded.pass_hash`,
		username, passHash,
	)
	return err
}

/* ===================== REGISTRATIONS ===================== */

var registrationCols = []string{
	"id", "first_name", "last_name", "email", "distance",
	"country", "city", "address", "phone", "emergency_phone",
	"club", "is_not_in_club", "profession",
	"medical_certificate", "terms_agreement", "created_at",
}

func scanRegistration(row pgx.Row) (Registration, error) {
	var r Registration
	err := row.Scan(&r.ID, &r.FirstName, &r.LastName, &r.Email, &r.Distance,
		&r.Country, &r.City, &r.Address, &r.Phone, &r.EmergencyPhone,
		&r.Club, &r.IsNotInClub, &r.Profession,
		&r.MedicalCertificate, &r.TermsAgreement, &r.CreatedAt)
	return r, err
}

func (s *PGStore) CreateRegistration(ctx context.Context, r Registration) (Registration, error) {
	err := s.qRow(ctx, psql.
		Insert("registrations").
		Columns("first_name", "last_name", "email", "distance",
			"country", "city", "address", "phone", "emergency_phone",
			"club", "is_not_in_club", "profession",
			"medical_certificate", "terms_agreement").
		Values(r.FirstName, r.LastName, r.Email, r.Distance,
			r.Country, r.City, r.Address, r.Phone, r.EmergencyPhone,
			r.Club, r.IsNotInClub, r.Profession,
			r.MedicalCertificate, r.TermsAgreement).
		Suffix("RETURNING id, created_at"),
	).Scan(&r.ID, &r.CreatedAt)
	return r, err
}

func (s *PGStore) GetRegistration(ctx context.Context, id int) (Registration, error) {
	r, err := scanRegistration(s.qRow(ctx, psql.
		Select(registrationCols...).
		From("registrations").
		Where(sq.Eq{"id": id}),
	))
	return r, notFoundOnNoRows(err)
}

func (s *PGStore) ListRegistrations(ctx context.Context) ([]Registration, error) {
	rows, err := s.qQuery(ctx, psql.
		Select(registrationCols...).
		From("registrations").
		OrderBy("id ASC"),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Registration
	for rows.Next() {
		r, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PGStore) UpdateRegistration(ctx context.Context, r Registration) (Registration, error) {
	tag, err := s.qExec(ctx, psql.
		Update("registrations").
		SetMap(map[string]any{
			"first_name":          r.FirstName,
			"last_name":           r.LastName,
			"email":               r.Email,
			"distance":            r.Distance,
			"country":             r.Country,
			"city":                r.City,
			"address":             r.Address,
			"phone":               r.Phone,
			"emergency_phone":     r.EmergencyPhone,
			"club":                r.Club,
			"is_not_in_club":      r.IsNotInClub,
			"profession":          r.Profession,
			"medical_certificate": r.MedicalCertificate,
			"terms_agreement":     r.TermsAgreement,
		}).
		Where(sq.Eq{"id": r.ID}),
	)
	if err != nil {
		return Registration{}, err
	}
	if tag.RowsAffected() == 0 {
		return Registration{}, ErrNotFound
	}
	return r, nil
}

func (s *PGStore) DeleteRegistration(ctx context.Context, id int) error {
	tag, err := s.qExec(ctx, psql.Delete("registrations").Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

/* ===================== PHOTOS ===================== */

func (s *PGStore) CreatePhoto(ctx context.Context, p Photo) (Photo, error) {
	err := s.qRow(ctx, psql.
		Insert("photos").
		Columns("filename", "original_name", "caption").
		Values(p.Filename, p.OriginalName, p.Caption).
		Suffix("RETURNING id, uploaded_at"),
	).Scan(&p.ID, &p.UploadedAt)
	return p, err
}

func (s *PGStore) GetPhoto(ctx context.Context, id int) (Photo, error) {
	var p Photo
	err := s.qRow(ctx, psql.
		Select("id", "filename", "original_name", "caption", "uploaded_at").
		From("photos").
		Where(sq.Eq{"id": id}),
	).Scan(&p.ID, &p.Filename, &p.OriginalName, &p.Caption, &p.UploadedAt)
	return p, notFoundOnNoRows(err)
}

func (s *PGStore) ListPhotos(ctx context.Context) ([]Photo, error) {
	rows, err := s.qQuery(ctx, psql.
		Select("id", "filename", "original_name", "caption", "uploaded_at").
		From("photos").
		OrderBy("id DESC"),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Photo
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.Filename, &p.OriginalName, &p.Caption, &p.UploadedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PGStore) DeletePhoto(ctx context.Context, id int) error {
	tag, err := s.qExec(ctx, psql.Delete("photos").Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

/* ===================== DOCUMENTS ===================== */

func (s *PGStore) CreateDocument(ctx context.Context, d Document) (Document, error) {
	err := s.qRow(ctx, psql.
		Insert("documents").
		Columns("filename", "original_name", "doc_type").
		Values(d.Filename, d.OriginalName, d.Type).
		Suffix("RETURNING id, uploaded_at"),
	).Scan(&d.ID, &d.UploadedAt)
	return d, err
}

func (s *PGStore) GetDocument(ctx context.Context, id int) (Document, error) {
	var d Document
	err := s.qRow(ctx, psql.
		Select("id", "filename", "original_name", "doc_type", "uploaded_at").
		From("documents").
		Where(sq.Eq{"id": id}),
	).Scan(&d.ID, &d.Filename, &d.OriginalName, &d.Type, &d.UploadedAt)
	return d, notFoundOnNoRows(err)
}

func (s *PGStore) ListDocuments(ctx context.Context) ([]Document, error) {
	rows, err := s.qQuery(ctx, psql.
		Select("id", "filename", "original_name", "doc_type", "uploaded_at").
		From("documents").
		OrderBy("id DESC"),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Filename, &d.OriginalName, &d.Type, &d.UploadedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *PGStore) DeleteDocument(ctx context.Context, id int) error {
	tag, err := s.qExec(ctx, psql.Delete("documents").Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

/* ===================== LOGS ===================== */

func (s *PGStore) AppendLog(ctx context.Context, actor, action, details string) error {
	_, err := s.db.Exec(ctx,
		"INSERT INTO logs(actor, action, details) VALUES ($1,$2,$3)",
		actor, action, details,
	)
	return err
}

func (s *PGStore) ListLogs(ctx context.Context, limit int) ([]LogEntry, error) {
	rows, err := s.qQuery(ctx, psql.
		Select("id", "actor", "action", "details", "created_at").
		From("logs").
		OrderBy("id DESC").
		Limit(uint64(limit)),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LogEntry
	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(&e.ID, &e.Actor, &e.Action, &e.Details, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
