package status

import (
	"context"

	"isocity/internal/app/ports"
	"isocity/internal/domain/economy"
)

type UseCase struct {
	TxManager ports.TxManager
	Cities    ports.CityRepository
}

func (u UseCase) Execute(ctx context.Context) (Response, error) {
	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := u.Cities.Current(txCtx)
		if err != nil {
			return err
		}
		occupation := c.Buildings.TotalOccupation()
		interval := c.Upkeep.Interval()
		remaining := (interval - c.Upkeep.Elapsed()) / c.Upkeep.Speed().Multiplier()
		out = Response{
			Gold:       c.Ledger.Balance(),
			Mode:       c.Mode(),
			Width:      c.Grid.Width(),
			Height:     c.Grid.Height(),
			Buildings:  c.Buildings.All(),
			Occupation: occupation,
			UpkeepDue:  economy.UpkeepDue(occupation, c.UpkeepRate, 1),
			Time: Time{
				Paused:            c.Upkeep.Paused(),
				Speed:             c.Upkeep.Speed(),
				IntervalSeconds:   interval.Seconds(),
				NextUpkeepSeconds: remaining.Seconds(),
			},
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
