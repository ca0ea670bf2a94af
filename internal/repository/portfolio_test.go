package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-platform-db/internal/models"
)

func TestPortfolioGetWithPositionsFoldsPnl(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)
	exchange := seedExchange(t, db)
	portfolio := seedPortfolio(t, db, user)

	positions := NewPositionRepo(db)
	require.NoError(t, positions.Save(ctx, &models.Position{
		PortfolioID:  portfolio.ID,
		ExchangeID:   exchange.ID,
		Symbol:       "BTCUSDT",
		Quantity:     d("2"),
		AverageCost:  d("100"),
		CurrentPrice: d("150"),
		RealizedPnl:  d("25"),
	}))
	require.NoError(t, positions.Save(ctx, &models.Position{
		PortfolioID:  portfolio.ID,
		ExchangeID:   exchange.ID,
		Symbol:       "ETHUSDT",
		Quantity:     d("10"),
		AverageCost:  d("20"),
		CurrentPrice: d("15"),
		RealizedPnl:  d("-5"),
	}))

	loaded, err := NewPortfolioRepo(db).GetWithPositions(ctx, portfolio.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Positions, 2)

	// 100 from the BTC position, -50 from the ETH position.
	assert.True(t, loaded.UnrealizedPnl().Equal(d("50")), "unrealized: got %s", loaded.UnrealizedPnl())
	assert.True(t, loaded.RealizedPnl().Equal(d("20")), "realized: got %s", loaded.RealizedPnl())
}

func TestPortfolioSoftDeleteExcludedFromQueries(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)
	repo := NewPortfolioRepo(db)

	keep := seedPortfolio(t, db, user)
	drop := &models.Portfolio{UserID: user.ID, Name: "old"}
	require.NoError(t, repo.Create(ctx, drop))

	require.NoError(t, repo.SoftDelete(ctx, drop.ID))

	remaining, err := repo.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)

	// The row itself is kept, only marked deleted.
	var count int64
	require.NoError(t, db.Unscoped().Model(&models.Portfolio{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestPortfolioDefaultSortsFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)
	repo := NewPortfolioRepo(db)

	require.NoError(t, repo.Create(ctx, &models.Portfolio{UserID: user.ID, Name: "side"}))
	require.NoError(t, repo.Create(ctx, &models.Portfolio{UserID: user.ID, Name: "main", IsDefault: true}))

	portfolios, err := repo.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, portfolios, 2)
	assert.Equal(t, "main", portfolios[0].Name)
}
