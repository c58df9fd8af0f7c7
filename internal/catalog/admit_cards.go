package catalog

import (
	"context"
	"fmt"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/cache"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/store"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/validate"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/models"
	"github.com/google/uuid"
)

// AdmitCards implements the AdmitCard use cases.
type AdmitCards struct {
	svc *Service
}

func (a *AdmitCards) Validate(raw any, mode validate.Mode) (*models.AdmitCard, error) {
	card, err := validate.ValidateAdmitCard(raw, mode)
	a.svc.observe(validate.EntityAdmitCard, err)
	return card, err
}

func (a *AdmitCards) Create(ctx context.Context, raw any) (*models.AdmitCard, error) {
	card, err := a.Validate(raw, validate.ModeCreate)
	if err != nil {
		return nil, err
	}
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	if card.Slug == "" {
		card.Slug = deriveSlug(card.Title, card.ID)
	}

	if err := a.svc.store.CreateAdmitCard(ctx, card); err != nil {
		return nil, fmt.Errorf("create admit card: %w", err)
	}
	a.svc.logger.Info("admit card created", "id", card.ID, "slug", card.Slug)
	return card, nil
}

func (a *AdmitCards) Get(ctx context.Context, id uuid.UUID) (*models.AdmitCard, error) {
	key := cache.AdmitCardKey(id)
	if rec, ok := cacheGet[models.AdmitCardRecord](ctx, a.svc, key); ok && rec.AdmitCard != nil {
		return rec.Unwrap(), nil
	}

	card, err := a.svc.store.GetAdmitCard(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get admit card: %w", err)
	}
	cacheSet(ctx, a.svc, key, models.NewAdmitCardRecord(card))
	return card, nil
}

func (a *AdmitCards) List(ctx context.Context, filter store.ListFilter) ([]*models.AdmitCard, int, error) {
	cards, total, err := a.svc.store.ListAdmitCards(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list admit cards: %w", err)
	}
	return cards, total, nil
}

func (a *AdmitCards) Update(ctx context.Context, id uuid.UUID, raw any) (*models.AdmitCard, error) {
	card, err := a.Validate(raw, validate.ModeUpdate)
	if err != nil {
		return nil, err
	}
	if err := checkPathID(card.ID, id); err != nil {
		return nil, err
	}

	if card.Slug == "" {
		current, err := a.svc.store.GetAdmitCard(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("update admit card: %w", err)
		}
		card.Slug = current.Slug
	}

	if err := a.svc.store.UpdateAdmitCard(ctx, card); err != nil {
		return nil, fmt.Errorf("update admit card: %w", err)
	}
	a.svc.invalidate(ctx, cache.AdmitCardKey(id))
	a.svc.logger.Info("admit card updated", "id", card.ID)
	return card, nil
}

func (a *AdmitCards) Delete(ctx context.Context, id uuid.UUID) error {
	if err := a.svc.store.DeleteAdmitCard(ctx, id); err != nil {
		return fmt.Errorf("delete admit card: %w", err)
	}
	a.svc.invalidate(ctx, cache.AdmitCardKey(id))
	a.svc.logger.Info("admit card deleted", "id", id)
	return nil
}
