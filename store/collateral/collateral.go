package collateral

import (
	"context"

	"dsc/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type collateralStore struct {
	db *db.DB
}

// New new collateral store
func New(db *db.DB) core.CollateralStore {
	return &collateralStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Collateral{})
		if err := tx.AutoMigrate(core.Collateral{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("idx_collaterals_symbol", "symbol").Error; err != nil {
			return err
		}

		return nil
	})
}

// Save insert or update the listed collaterals by symbol
func (s *collateralStore) Save(ctx context.Context, collaterals []*core.Collateral) error {
	return s.db.Tx(func(tx *db.DB) error {
		for _, c := range collaterals {
			var existing core.Collateral
			err := tx.Update().Where("symbol = ?", c.Symbol).First(&existing).Error
			if store.IsErrNotFound(err) {
				if err := tx.Update().Create(c).Error; err != nil {
					return err
				}

				continue
			}

			if err != nil {
				return err
			}

			if err := tx.Update().Model(&existing).Updates(map[string]interface{}{
				"price_feed": c.PriceFeed,
				"position":   c.Position,
			}).Error; err != nil {
				return err
			}

			c.ID = existing.ID
		}

		return nil
	})
}

// All collaterals in registration order
func (s *collateralStore) All(ctx context.Context) ([]*core.Collateral, error) {
	var collaterals []*core.Collateral
	if err := s.db.View().Order("position").Find(&collaterals).Error; err != nil {
		return nil, err
	}

	return collaterals, nil
}
