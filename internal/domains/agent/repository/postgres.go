package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"agentcard/internal/domains/agent/model"
	"agentcard/internal/shared/utils"
)

// uniqueViolation is the postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

const agentColumns = `
	slug, name, company, role, bio,
	mobile_phone, office_phone, emails, websites, addresses,
	facebook, instagram, linkedin, twitter, youtube, tiktok,
	pec, vat_number, sdi_code,
	photo_url, gallery_urls,
	doc1_url, doc2_url, doc3_url, doc4_url, doc5_url, doc6_url,
	created_at, updated_at`

// postgresRepository implements Repository on pgxpool. It is the only code
// that sees the delimited storage representation of multi-value fields: it
// joins on write and splits on scan.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Agent) error {
	query := `
		INSERT INTO agents (
			slug, name, company, role, bio,
			mobile_phone, office_phone, emails, websites, addresses,
			facebook, instagram, linkedin, twitter, youtube, tiktok,
			pec, vat_number, sdi_code,
			photo_url, gallery_urls,
			doc1_url, doc2_url, doc3_url, doc4_url, doc5_url, doc6_url
		)
		VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16,
			$17, $18, $19,
			$20, $21,
			$22, $23, $24, $25, $26, $27
		)`

	_, err := r.pool.Exec(ctx, query, r.writeArgs(a)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.NewSlugAlreadyExists(a.Slug)
		}
		return model.NewStorageError("create", err)
	}
	return nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Agent, error) {
	query := fmt.Sprintf(`SELECT %s FROM agents WHERE slug = $1`, agentColumns)

	row := r.pool.QueryRow(ctx, query, utils.NormalizeSlug(slug))
	a, err := scanAgent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get agent by slug: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*model.Agent, error) {
	query := fmt.Sprintf(`SELECT %s FROM agents ORDER BY name ASC`, agentColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	defer rows.Close()

	var agents []*model.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agent row: %w", err)
		}
		agents = append(agents, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating agent rows: %w", err)
	}

	return agents, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Agent) error {
	query := `
		UPDATE agents SET
			name = $2, company = $3, role = $4, bio = $5,
			mobile_phone = $6, office_phone = $7, emails = $8, websites = $9, addresses = $10,
			facebook = $11, instagram = $12, linkedin = $13, twitter = $14, youtube = $15, tiktok = $16,
			pec = $17, vat_number = $18, sdi_code = $19,
			photo_url = $20, gallery_urls = $21,
			doc1_url = $22, doc2_url = $23, doc3_url = $24, doc4_url = $25, doc5_url = $26, doc6_url = $27,
			updated_at = NOW()
		WHERE slug = $1`

	result, err := r.pool.Exec(ctx, query, r.writeArgs(a)...)
	if err != nil {
		return model.NewStorageError("update", err)
	}
	if result.RowsAffected() == 0 {
		return model.NewAgentNotFound(a.Slug)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, slug string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM agents WHERE slug = $1`, utils.NormalizeSlug(slug))
	if err != nil {
		return model.NewStorageError("delete", err)
	}
	return nil
}

// writeArgs flattens the record into the 27 insert/update parameters,
// joining the multi-value fields into their delimited storage form.
func (r *postgresRepository) writeArgs(a *model.Agent) []interface{} {
	return []interface{}{
		utils.NormalizeSlug(a.Slug), a.Name, a.Company, a.Role, a.Bio,
		a.MobilePhone, a.OfficePhone,
		utils.JoinList(a.Emails, model.EmailDelimiter),
		utils.JoinList(a.Websites, model.WebsiteDelimiter),
		utils.JoinList(a.Addresses, model.AddressDelimiter),
		a.Facebook, a.Instagram, a.LinkedIn, a.Twitter, a.YouTube, a.TikTok,
		a.PEC, a.VATNumber, a.SDICode,
		a.PhotoURL,
		utils.JoinList(a.GalleryURLs, model.GalleryDelimiter),
		a.Documents[0], a.Documents[1], a.Documents[2],
		a.Documents[3], a.Documents[4], a.Documents[5],
	}
}

func scanAgent(row pgx.Row) (*model.Agent, error) {
	var a model.Agent
	var emails, websites, addresses, gallery string

	err := row.Scan(
		&a.Slug, &a.Name, &a.Company, &a.Role, &a.Bio,
		&a.MobilePhone, &a.OfficePhone, &emails, &websites, &addresses,
		&a.Facebook, &a.Instagram, &a.LinkedIn, &a.Twitter, &a.YouTube, &a.TikTok,
		&a.PEC, &a.VATNumber, &a.SDICode,
		&a.PhotoURL, &gallery,
		&a.Documents[0], &a.Documents[1], &a.Documents[2],
		&a.Documents[3], &a.Documents[4], &a.Documents[5],
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Emails = utils.SplitList(emails, model.EmailDelimiter)
	a.Websites = utils.SplitList(websites, model.WebsiteDelimiter)
	a.Addresses = utils.SplitList(addresses, model.AddressDelimiter)
	a.GalleryURLs = utils.SplitList(gallery, model.GalleryDelimiter)

	return &a, nil
}
