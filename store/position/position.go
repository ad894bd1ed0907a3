package position

import (
	"context"

	"dsc/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type positionStore struct {
	db *db.DB
}

// New new position store
func New(db *db.DB) core.PositionStore {
	return &positionStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Position{})
		if err := tx.AutoMigrate(core.Position{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("idx_positions_user_kind", "user_id", "kind").Error; err != nil {
			return err
		}

		return nil
	})
}

// Save upsert every position in one transaction
func (s *positionStore) Save(ctx context.Context, positions []*core.Position) error {
	return s.db.Tx(func(tx *db.DB) error {
		for _, p := range positions {
			if err := save(tx, p); err != nil {
				return err
			}
		}

		return nil
	})
}

func save(tx *db.DB, p *core.Position) error {
	var existing core.Position
	err := tx.Update().Where("user_id = ? AND kind = ?", p.UserID, p.Kind).First(&existing).Error
	if store.IsErrNotFound(err) {
		p.Version = 1
		return tx.Update().Create(p).Error
	}

	if err != nil {
		return err
	}

	update := tx.Update().Model(core.Position{}).
		Where("id = ? AND version = ?", existing.ID, existing.Version).
		Updates(map[string]interface{}{
			"amount":  p.Amount,
			"version": existing.Version + 1,
		})
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	p.ID = existing.ID
	p.Version = existing.Version + 1
	return nil
}

func (s *positionStore) All(ctx context.Context) ([]*core.Position, error) {
	var positions []*core.Position
	if err := s.db.View().Order("id").Find(&positions).Error; err != nil {
		return nil, err
	}

	return positions, nil
}

func (s *positionStore) FindByUser(ctx context.Context, userID string) ([]*core.Position, error) {
	var positions []*core.Position
	if err := s.db.View().Where("user_id = ?", userID).Order("id").Find(&positions).Error; err != nil {
		return nil, err
	}

	return positions, nil
}
