package usecases_test

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tri-tranminh/gold-tracker/internal/interaction/ngoctham"
	"github.com/tri-tranminh/gold-tracker/internal/model"
	"github.com/tri-tranminh/gold-tracker/internal/repository/history"
	"github.com/tri-tranminh/gold-tracker/internal/usecases"
)

var vnLoc = time.FixedZone("Asia/Ho_Chi_Minh", 7*3600)

type boardInteraction struct {
	board *ngoctham.Board
	err   error
}

func (that *boardInteraction) GetBoard(context.Context) (*ngoctham.Board, error) {
	return that.board, that.err
}

func newRepository(t *testing.T) *history.Repository {
	t.Helper()
	return history.NewRepository(slog.Default(), filepath.Join(t.TempDir(), "data", "gold_prices.csv"))
}

func Test_UpdatePrices_Idempotent(t *testing.T) {
	ctx := context.Background()
	repository := newRepository(t)
	interaction := &boardInteraction{board: &ngoctham.Board{
		Prices: []ngoctham.GoldPrice{
			{GoldType: "Nhẫn 999.9", BuyPrice: 11000000, SellPrice: 11200000},
			{GoldType: "Vàng Miếng SJC (Loại 10 chỉ)", BuyPrice: 120500000, SellPrice: 122000000},
		},
	}}

	updatePriceUC := usecases.NewUpdatePricesUseCase(slog.Default(), repository, interaction, vnLoc)

	// First run of the day appends every tracked quote.
	count, err := updatePriceUC.UpdatePrices(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	// Second run with an unchanged upstream response appends nothing.
	count, err = updatePriceUC.UpdatePrices(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	keys, err := repository.LoadExistingKeys(ctx)
	require.NoError(t, err)
	require.Len(t, keys, 2)
}

func Test_UpdatePrices_SkipsExistingKeyRegardlessOfPrices(t *testing.T) {
	ctx := context.Background()
	repository := newRepository(t)
	today := time.Now().In(vnLoc).Format(model.DateLayout)

	// Given: today's ring price is already saved with different values.
	_, err := repository.Append(ctx, []*model.GoldPrice{
		{Date: today, GoldType: "Nhẫn 999.9", BuyPrice: 1, SellPrice: 2},
	})
	require.NoError(t, err)

	interaction := &boardInteraction{board: &ngoctham.Board{
		Prices: []ngoctham.GoldPrice{
			{GoldType: "Nhẫn 999.9", BuyPrice: 11000000, SellPrice: 11200000},
			{GoldType: "Vàng Miếng SJC (Loại 10 chỉ)", BuyPrice: 120500000, SellPrice: 122000000},
		},
	}}

	updatePriceUC := usecases.NewUpdatePricesUseCase(slog.Default(), repository, interaction, vnLoc)

	count, err := updatePriceUC.UpdatePrices(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	keys, err := repository.LoadExistingKeys(ctx)
	require.NoError(t, err)

	expectedKeys := map[model.Key]struct{}{
		{Date: today, GoldType: "Nhẫn 999.9"}:                   {},
		{Date: today, GoldType: "Vàng Miếng SJC (Loại 10 chỉ)"}: {},
	}
	require.Equal(t, expectedKeys, keys)
}

func Test_UpdatePrices_DedupesWithinOneBatch(t *testing.T) {
	ctx := context.Background()
	repository := newRepository(t)

	// A duplicated label in one response must still yield a single row.
	interaction := &boardInteraction{board: &ngoctham.Board{
		Prices: []ngoctham.GoldPrice{
			{GoldType: "Nhẫn 999.9", BuyPrice: 11000000, SellPrice: 11200000},
			{GoldType: "Nhẫn 999.9", BuyPrice: 11050000, SellPrice: 11250000},
		},
	}}

	updatePriceUC := usecases.NewUpdatePricesUseCase(slog.Default(), repository, interaction, vnLoc)

	count, err := updatePriceUC.UpdatePrices(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func Test_UpdatePrices_NoTrackedTypes(t *testing.T) {
	ctx := context.Background()
	repository := newRepository(t)
	interaction := &boardInteraction{board: &ngoctham.Board{
		SeenTypes: []string{"Vàng trang sức", "Vàng 18K"},
	}}

	updatePriceUC := usecases.NewUpdatePricesUseCase(slog.Default(), repository, interaction, vnLoc)

	// Zero matches is a warning, not a failure.
	count, err := updatePriceUC.UpdatePrices(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	keys, err := repository.LoadExistingKeys(ctx)
	require.NoError(t, err)
	require.Empty(t, keys)
}

func Test_UpdatePrices_FetchFailure(t *testing.T) {
	repository := newRepository(t)
	fetchErr := &ngoctham.NetworkError{Err: errors.New("bad status code: 503")}
	interaction := &boardInteraction{err: fetchErr}

	updatePriceUC := usecases.NewUpdatePricesUseCase(slog.Default(), repository, interaction, vnLoc)

	_, err := updatePriceUC.UpdatePrices(context.Background())
	require.Error(t, err)

	var netErr *ngoctham.NetworkError
	require.True(t, errors.As(err, &netErr))
}
