package model

import (
	"time"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// GiftRegistryItem maps the gift_registry table.
type GiftRegistryItem struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:uuid_generate_v7()"`
	EventID       uuid.UUID `gorm:"column:event_id;type:uuid;not null;index"`
	Title         string    `gorm:"column:title;not null"`
	Description   string    `gorm:"column:description"`
	TargetAmount  float64   `gorm:"column:target_amount;not null"`
	CurrentAmount float64   `gorm:"column:current_amount;not null;default:0"`
	IsFulfilled   bool      `gorm:"column:is_fulfilled;not null;default:false"`
	ImageURL      string    `gorm:"column:image_url"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GiftRegistryItem model
func (GiftRegistryItem) TableName() string {
	return "gift_registry"
}

// ToEntity converts the model to a domain entity
func (g *GiftRegistryItem) ToEntity() *entity.GiftRegistryItem {
	return &entity.GiftRegistryItem{
		ID:            g.ID,
		EventID:       g.EventID,
		Title:         g.Title,
		Description:   g.Description,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		IsFulfilled:   g.IsFulfilled,
		ImageURL:      g.ImageURL,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// FromGiftEntity converts a domain entity to the model
func FromGiftEntity(g *entity.GiftRegistryItem) *GiftRegistryItem {
	return &GiftRegistryItem{
		ID:            g.ID,
		EventID:       g.EventID,
		Title:         g.Title,
		Description:   g.Description,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		IsFulfilled:   g.IsFulfilled,
		ImageURL:      g.ImageURL,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// Contribution maps the contributions table. Rows are append-only and
// survive deletion of their gift so payment history stays auditable.
type Contribution struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:uuid_generate_v7()"`
	GiftID        uuid.UUID `gorm:"column:gift_id;type:uuid;not null;index"`
	ContributorID uuid.UUID `gorm:"column:contributor_id;type:uuid;not null"`
	Amount        float64   `gorm:"column:amount;not null"`
	Message       string    `gorm:"column:message"`
	IsAnonymous   bool      `gorm:"column:is_anonymous;not null;default:false"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`

	Contributor *Profile `gorm:"foreignKey:ContributorID;references:ID"`
}

// TableName specifies the table name for Contribution model
func (Contribution) TableName() string {
	return "contributions"
}

// ToEntity converts the model to a domain entity
func (c *Contribution) ToEntity() *entity.Contribution {
	contribution := &entity.Contribution{
		ID:            c.ID,
		GiftID:        c.GiftID,
		ContributorID: c.ContributorID,
		Amount:        c.Amount,
		Message:       c.Message,
		IsAnonymous:   c.IsAnonymous,
		CreatedAt:     c.CreatedAt,
	}
	if c.Contributor != nil {
		contribution.Contributor = c.Contributor.ToEntity()
	}

	return contribution
}

// FromContributionEntity converts a domain entity to the model
func FromContributionEntity(c *entity.Contribution) *Contribution {
	return &Contribution{
		ID:            c.ID,
		GiftID:        c.GiftID,
		ContributorID: c.ContributorID,
		Amount:        c.Amount,
		Message:       c.Message,
		IsAnonymous:   c.IsAnonymous,
		CreatedAt:     c.CreatedAt,
	}
}
