package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tri-tranminh/gold-tracker/internal/interaction/ngoctham"
	"github.com/tri-tranminh/gold-tracker/internal/model"
)

type Repository interface {
	LoadExistingKeys(ctx context.Context) (map[model.Key]struct{}, error)
	Append(ctx context.Context, rows []*model.GoldPrice) (int, error)
}

type Interaction interface {
	GetBoard(ctx context.Context) (*ngoctham.Board, error)
}

type UpdatePricesUseCase struct {
	logger      *slog.Logger
	repository  Repository
	interaction Interaction
	loc         *time.Location
}

func NewUpdatePricesUseCase(logger *slog.Logger, repository Repository, interaction Interaction, loc *time.Location) *UpdatePricesUseCase {
	return &UpdatePricesUseCase{
		logger:      logger.With("component", "update_prices"),
		repository:  repository,
		interaction: interaction,
		loc:         loc,
	}
}

// UpdatePrices runs one fetch-dedupe-append pass for the current local day and
// returns the number of rows appended. Zero rows is a normal outcome: either
// nothing on the board matched the tracked types, or today's observations were
// already saved by an earlier run.
func (that *UpdatePricesUseCase) UpdatePrices(ctx context.Context) (int, error) {
	log := that.logger.With("method", "UpdatePrices")

	today := time.Now().In(that.loc).Format(model.DateLayout)
	log.Info("fetching gold prices", "date", today)

	board, err := that.interaction.GetBoard(ctx)
	if err != nil {
		return 0, fmt.Errorf("get price board: %w", err)
	}

	if len(board.Prices) == 0 {
		log.Warn("no tracked gold types found in response", "seen_types", board.SeenTypes)
		return 0, nil
	}

	existing, err := that.repository.LoadExistingKeys(ctx)
	if err != nil {
		return 0, fmt.Errorf("load existing keys: %w", err)
	}

	rows := make([]*model.GoldPrice, 0, len(board.Prices))
	for _, price := range board.Prices {
		row := &model.GoldPrice{
			Date:      today,
			GoldType:  price.GoldType,
			BuyPrice:  price.BuyPrice,
			SellPrice: price.SellPrice,
		}

		if _, ok := existing[row.Key()]; ok {
			continue
		}
		// Marking the key keeps a duplicated label within one response from
		// producing two rows for the same day.
		existing[row.Key()] = struct{}{}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		log.Info("already up to date", "date", today)
		return 0, nil
	}

	count, err := that.repository.Append(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("append rows: %w", err)
	}

	for _, row := range rows {
		log.Info("saved gold price",
			"date", row.Date,
			"gold_type", row.GoldType,
			"buy", humanize.Comma(row.BuyPrice),
			"sell", humanize.Comma(row.SellPrice),
		)
	}

	return count, nil
}
