package sqlite

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"lobby/internal/domain/entity"
	domainerrors "lobby/internal/domain/errors"
	"lobby/internal/domain/repository"
	"lobby/internal/errors"
	"lobby/internal/infra/persistence/model"
)

const profileSelect = `SELECT p.owner_id, p.genre, p.favorite_items, p.website, p.location, p.bio, p.social,
	p.created_at, p.updated_at, a.name, a.avatar
FROM profiles p
JOIN accounts a ON a.id = p.owner_id`

type profileRepository struct {
	db  dbtx
	now func() time.Time
}

// NewProfileRepository returns a ProfileRepository running outside any transaction.
func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) clock() time.Time {
	if repo.now != nil {
		return repo.now()
	}

	return time.Now()
}

func (repo *profileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Profile, error) {
	row := repo.db.QueryRowContext(ctx, profileSelect+` WHERE p.owner_id = ?`, ownerID.String())

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by owner")
	}

	return profile, nil
}

// UpsertByOwner inserts the full row built from patch; on conflict it updates
// only the columns the patch carries, so concurrent disjoint patches all land.
func (repo *profileRepository) UpsertByOwner(ctx context.Context, ownerID uuid.UUID, patch *entity.ProfilePatch) (*entity.Profile, error) {
	now := repo.clock()

	fresh := entity.NewProfile(ownerID)
	fresh.Apply(patch)
	fresh.CreatedAt = now
	fresh.UpdatedAt = now
	row := model.FromProfileDomain(fresh)

	favoriteItems, err := row.FavoriteItems.Value()
	if err != nil {
		return nil, err
	}
	social, err := row.Social.Value()
	if err != nil {
		return nil, err
	}

	cols := model.PatchColumns(patch)
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)

	sets := make([]string, 0, len(names)+1)
	for _, name := range names {
		sets = append(sets, name+" = excluded."+name)
	}
	sets = append(sets, "updated_at = excluded.updated_at")

	query := `INSERT INTO profiles (owner_id, genre, favorite_items, website, location, bio, social, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(owner_id) DO UPDATE SET ` + strings.Join(sets, ", ")

	_, err = repo.db.ExecContext(ctx, query,
		ownerID.String(),
		row.Genre,
		favoriteItems,
		row.Website,
		row.Location,
		row.Bio,
		social,
		toMillis(row.CreatedAt),
		toMillis(row.UpdatedAt),
	)
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
	}

	return repo.FindByOwner(ctx, ownerID)
}

func (repo *profileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	rows, err := repo.db.QueryContext(ctx, profileSelect+` ORDER BY p.created_at ASC, p.rowid ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}
	defer rows.Close()

	profiles := make([]*entity.Profile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan profile")
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate profiles")
	}

	return profiles, nil
}

func scanProfile(row rowScanner) (*entity.Profile, error) {
	var (
		data                 model.ProfileModel
		owner                model.AccountModel
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&data.OwnerID,
		&data.Genre,
		&data.FavoriteItems,
		&data.Website,
		&data.Location,
		&data.Bio,
		&data.Social,
		&createdAt,
		&updatedAt,
		&owner.Name,
		&owner.Avatar,
	)
	if err != nil {
		return nil, err
	}
	data.CreatedAt = fromMillis(createdAt)
	data.UpdatedAt = fromMillis(updatedAt)
	owner.ID = data.OwnerID
	data.Owner = &owner

	return model.ToProfileDomain(&data), nil
}
