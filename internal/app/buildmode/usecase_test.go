package buildmode

import (
	"context"
	"errors"
	"testing"

	"isocity/internal/app/ports"
	"isocity/internal/domain/building"
	"isocity/internal/domain/placement"
	"isocity/internal/domain/world"
)

func TestUseCase_EnterHoverConfirm(t *testing.T) {
	uc, c, j, m := newUseCase(1000)
	ctx := context.Background()

	resp, err := uc.Enter(ctx, EnterRequest{BuildingType: "theatre"})
	if err != nil {
		t.Fatalf("Enter error: %v", err)
	}
	if resp.Mode != placement.ModeOn || resp.Preview.CanPlace {
		t.Fatalf("expected mode on without placeable preview, got %+v", resp)
	}

	resp, err = uc.Hover(ctx, HoverRequest{Pos: &world.Point{X: 0, Y: 0}})
	if err != nil {
		t.Fatalf("Hover error: %v", err)
	}
	if !resp.Preview.CanPlace || resp.Preview.Color != placement.ColorGreen {
		t.Fatalf("expected green preview, got %+v", resp.Preview)
	}

	out, err := uc.Confirm(ctx)
	if err != nil {
		t.Fatalf("Confirm error: %v", err)
	}
	if !out.Committed || out.Building == nil || out.Gold != 990 || out.Mode != placement.ModeOff {
		t.Fatalf("unexpected confirm response %+v", out)
	}
	if c.Grid.MustTile(world.Point{X: 1, Y: 1}).Occupant != out.Building.ID {
		t.Fatalf("expected tile occupied by new building")
	}
	if len(j.entries) != 2 || j.entries[0].Kind != ports.JournalBuildModeEntered || j.entries[1].Kind != ports.JournalBuildingPlaced {
		t.Fatalf("unexpected journal %+v", j.entries)
	}
	if j.entries[1].Payload["gold_after"] != int64(990) {
		t.Fatalf("expected gold_after=990, got %v", j.entries[1].Payload["gold_after"])
	}
	if m.placed[building.Theatre] != 1 {
		t.Fatalf("expected placed metric")
	}
}

func TestUseCase_EnterUnknownType(t *testing.T) {
	uc, _, _, _ := newUseCase(1000)
	if _, err := uc.Enter(context.Background(), EnterRequest{BuildingType: "pyramid"}); !errors.Is(err, ErrUnknownBuildingType) {
		t.Fatalf("expected ErrUnknownBuildingType, got %v", err)
	}
}

func TestUseCase_ConfirmRejectedKeepsSession(t *testing.T) {
	uc, c, j, m := newUseCase(1000)
	ctx := context.Background()
	_, _ = uc.Enter(ctx, EnterRequest{BuildingType: "theatre"})
	_, _ = uc.Hover(ctx, HoverRequest{Pos: &world.Point{X: 3, Y: 3}})

	out, err := uc.Confirm(ctx)
	if err != nil {
		t.Fatalf("Confirm error: %v", err)
	}
	if out.Committed || out.Reason != placement.RejectCannotPlace || out.Mode != placement.ModeOn {
		t.Fatalf("expected cannot_place with session kept, got %+v", out)
	}
	if c.Ledger.Balance() != 1000 || c.Buildings.Len() != 0 {
		t.Fatalf("rejected confirm must not change state")
	}
	if last := j.entries[len(j.entries)-1]; last.Kind != ports.JournalPlacementRejected || last.Payload["reason"] != "cannot_place" {
		t.Fatalf("expected rejection journaled, got %+v", last)
	}
	if m.rejected[placement.RejectCannotPlace] != 1 {
		t.Fatalf("expected rejected metric")
	}
}

func TestUseCase_ConfirmJournalFailureLeavesCityUntouched(t *testing.T) {
	uc, c, j, _ := newUseCase(1000)
	ctx := context.Background()
	_, _ = uc.Enter(ctx, EnterRequest{BuildingType: "theatre"})
	_, _ = uc.Hover(ctx, HoverRequest{Pos: &world.Point{X: 0, Y: 0}})
	j.failOn = ports.JournalBuildingPlaced

	if _, err := uc.Confirm(ctx); !errors.Is(err, errJournalDown) {
		t.Fatalf("expected journal error, got %v", err)
	}
	if c.Ledger.Balance() != 1000 || c.Buildings.Len() != 0 || c.Mode() != placement.ModeOn {
		t.Fatalf("expected city untouched after failed journal")
	}
	for _, tile := range c.Grid.Tiles() {
		if tile.Occupied() {
			t.Fatalf("tile %v occupied after failed commit", tile.Pos)
		}
	}
}

func TestUseCase_ConfirmAndCancelOutsideBuildMode(t *testing.T) {
	uc, _, _, _ := newUseCase(1000)
	ctx := context.Background()
	if _, err := uc.Confirm(ctx); !errors.Is(err, ErrNotInBuildMode) {
		t.Fatalf("expected ErrNotInBuildMode from confirm, got %v", err)
	}
	if _, err := uc.Cancel(ctx); !errors.Is(err, ErrNotInBuildMode) {
		t.Fatalf("expected ErrNotInBuildMode from cancel, got %v", err)
	}
}

func TestUseCase_Cancel(t *testing.T) {
	uc, c, j, m := newUseCase(1000)
	ctx := context.Background()
	_, _ = uc.Enter(ctx, EnterRequest{BuildingType: "colosseum"})

	resp, err := uc.Cancel(ctx)
	if err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if resp.Mode != placement.ModeOff || resp.Preview.Active || c.Session() != nil {
		t.Fatalf("expected session closed, got %+v", resp)
	}
	if j.entries[len(j.entries)-1].Payload["building_type"] != "colosseum" {
		t.Fatalf("expected cancel journal with type")
	}
	if m.cancelled != 1 {
		t.Fatalf("expected cancelled metric")
	}
}

func TestUseCase_InsufficientGoldPreview(t *testing.T) {
	uc, _, _, _ := newUseCase(5)
	ctx := context.Background()
	_, _ = uc.Enter(ctx, EnterRequest{BuildingType: "theatre"})
	resp, err := uc.Hover(ctx, HoverRequest{Pos: &world.Point{X: 0, Y: 0}})
	if err != nil {
		t.Fatalf("Hover error: %v", err)
	}
	if resp.Preview.CanPlace || resp.Preview.Color != placement.ColorRed {
		t.Fatalf("expected red preview with 5 gold, got %+v", resp.Preview)
	}
}
