package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/xid"

	"rpbot/internal/domain/entities"
	"rpbot/internal/infrastructure/database/sqlc_generated"
	"rpbot/internal/ports/output"
)

var _ output.UniverseRepository = (*UniverseRepository)(nil)

type UniverseRepository struct {
	pool *pgxpool.Pool
	q    *sqlc_generated.Queries
}

func NewUniverseRepository(pool *pgxpool.Pool) *UniverseRepository {
	return &UniverseRepository{pool: pool, q: sqlc_generated.New(pool)}
}

func (r *UniverseRepository) CreateWithServer(ctx context.Context, universe *entities.Universe, guildID string, stats []entities.Stat) (*entities.Server, error) {
	if universe.ID == "" {
		universe.ID = xid.New().String()
	}

	var server entities.Server
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		q := r.q.WithTx(tx)

		row, err := q.CreateUniverse(ctx, sqlc_generated.CreateUniverseParams{
			ID:                 universe.ID,
			Name:               universe.Name,
			CreatorID:          universe.CreatorID,
			Tier:               universe.Tier,
			GlobalTimeModifier: int32(universe.GlobalTimeModifier),
			DefaultLocale:      universe.DefaultLocale,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", output.ErrUniverseInsert, err)
		}
		*universe = universeToDomain(row)

		srv, err := q.CreateServer(ctx, sqlc_generated.CreateServerParams{UniverseID: universe.ID, GuildID: guildID})
		if err != nil {
			return fmt.Errorf("%w: %w", output.ErrServerInsert, err)
		}
		server = serverToDomain(srv)

		for _, s := range stats {
			s.UniverseID = universe.ID
			params, err := statParams(s)
			if err != nil {
				return fmt.Errorf("%w: %w", output.ErrStatInsert, err)
			}
			if _, err := q.CreateStat(ctx, params); err != nil {
				return fmt.Errorf("%w: %w", output.ErrStatInsert, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create universe: %w", err)
	}
	return &server, nil
}

func (r *UniverseRepository) FindByID(ctx context.Context, id string) (*entities.Universe, error) {
	row, err := r.q.GetUniverse(ctx, id)
	if err != nil {
		return nil, notFound("get universe", err)
	}
	u := universeToDomain(row)
	return &u, nil
}

func (r *UniverseRepository) FindByCreatorID(ctx context.Context, creatorID string) ([]entities.Universe, error) {
	rows, err := r.q.ListUniversesByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list universes by creator: %w", err)
	}
	out := make([]entities.Universe, len(rows))
	for i, row := range rows {
		out[i] = universeToDomain(row)
	}
	return out, nil
}

func (r *UniverseRepository) CountByCreatorID(ctx context.Context, creatorID string) (int, error) {
	n, err := r.q.CountUniversesByCreator(ctx, creatorID)
	if err != nil {
		return 0, fmt.Errorf("count universes by creator: %w", err)
	}
	return int(n), nil
}

func (r *UniverseRepository) Stats(ctx context.Context, universeID string) ([]entities.Stat, error) {
	rows, err := r.q.ListStatsByUniverse(ctx, universeID)
	if err != nil {
		return nil, fmt.Errorf("list stats: %w", err)
	}
	out := make([]entities.Stat, 0, len(rows))
	for _, row := range rows {
		s, err := statToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
