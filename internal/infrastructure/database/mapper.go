package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"rpbot/internal/domain"
	"rpbot/internal/domain/entities"
	"rpbot/internal/infrastructure/database/sqlc_generated"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// notFound turns pgx.ErrNoRows into domain.ErrNotFound and wraps everything else.
func notFound(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func universeToDomain(u sqlc_generated.Universe) entities.Universe {
	return entities.Universe{
		ID:                 u.ID,
		Name:               u.Name,
		CreatorID:          u.CreatorID,
		Tier:               u.Tier,
		GlobalTimeModifier: int(u.GlobalTimeModifier),
		DefaultLocale:      u.DefaultLocale,
		CreatedAt:          pgtypeTimestamptzToTime(u.CreatedAt),
	}
}

func serverToDomain(s sqlc_generated.Server) entities.Server {
	return entities.Server{
		ID:                   s.ID,
		UniverseID:           s.UniverseID,
		GuildID:              s.GuildID,
		AdminRoleID:          s.AdminRoleID,
		ModeratorRoleID:      s.ModeratorRoleID,
		SpectatorRoleID:      s.SpectatorRoleID,
		PlayerRoleID:         s.PlayerRoleID,
		EveryoneRoleID:       s.EveryoneRoleID,
		AdminCategoryID:      s.AdminCategoryID,
		NRPCategoryID:        s.NrpCategoryID,
		RPCategoryID:         s.RpCategoryID,
		RoadCategoryID:       s.RoadCategoryID,
		LogChannelID:         s.LogChannelID,
		CommandsChannelID:    s.CommandsChannelID,
		ModerationChannelID:  s.ModerationChannelID,
		NRPGeneralChannelID:  s.NrpGeneralChannelID,
		RPCharacterChannelID: s.RpCharacterChannelID,
		RPWikiChannelID:      s.RpWikiChannelID,
		CreatedAt:            pgtypeTimestamptzToTime(s.CreatedAt),
		UpdatedAt:            pgtypeTimestamptzToTime(s.UpdatedAt),
	}
}

func placeToDomain(p sqlc_generated.Place) entities.Place {
	return entities.Place{
		ID:         p.ID,
		UniverseID: p.UniverseID,
		GuildID:    p.GuildID,
		CategoryID: p.CategoryID,
		RoleID:     p.RoleID,
		Name:       p.Name,
		CreatedAt:  pgtypeTimestamptzToTime(p.CreatedAt),
	}
}

func roadToDomain(r sqlc_generated.Road) entities.Road {
	return entities.Road{
		ID:         r.ID,
		UniverseID: r.UniverseID,
		GuildID:    r.GuildID,
		RoleID:     r.RoleID,
		ChannelID:  r.ChannelID,
		PlaceOneID: r.PlaceOneID,
		PlaceTwoID: r.PlaceTwoID,
		Distance:   r.Distance,
		CreatedAt:  pgtypeTimestamptzToTime(r.CreatedAt),
	}
}

func statParams(s entities.Stat) (sqlc_generated.CreateStatParams, error) {
	base, err := json.Marshal(s.BaseValue)
	if err != nil {
		return sqlc_generated.CreateStatParams{}, fmt.Errorf("stat %s: %w", s.Name, err)
	}
	lo, err := marshalOptional(s.Min)
	if err != nil {
		return sqlc_generated.CreateStatParams{}, fmt.Errorf("stat %s min: %w", s.Name, err)
	}
	hi, err := marshalOptional(s.Max)
	if err != nil {
		return sqlc_generated.CreateStatParams{}, fmt.Errorf("stat %s max: %w", s.Name, err)
	}
	return sqlc_generated.CreateStatParams{
		UniverseID: s.UniverseID,
		Name:       s.Name,
		BaseValue:  base,
		Formula:    s.Formula,
		MinValue:   lo,
		MaxValue:   hi,
	}, nil
}

func statToDomain(s sqlc_generated.Stat) (entities.Stat, error) {
	out := entities.Stat{ID: s.ID, UniverseID: s.UniverseID, Name: s.Name, Formula: s.Formula}
	if err := json.Unmarshal(s.BaseValue, &out.BaseValue); err != nil {
		return out, fmt.Errorf("stat %s: %w", s.Name, err)
	}
	var err error
	if out.Min, err = unmarshalOptional(s.MinValue); err != nil {
		return out, fmt.Errorf("stat %s min: %w", s.Name, err)
	}
	if out.Max, err = unmarshalOptional(s.MaxValue); err != nil {
		return out, fmt.Errorf("stat %s max: %w", s.Name, err)
	}
	return out, nil
}

func marshalOptional(v *entities.StatValue) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func unmarshalOptional(data []byte) (*entities.StatValue, error) {
	if data == nil {
		return nil, nil
	}
	var v entities.StatValue
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
