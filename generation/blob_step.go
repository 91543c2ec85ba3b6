package generation

import (
	"fmt"

	"floorgen/components"
	"floorgen/data"
	"floorgen/spawners"
)

// MaxBlobTries bounds the position retries for a single blob
const MaxBlobTries = 30

// BlobStep stamps fragment-shaped terrain blobs onto non-room cells
type BlobStep struct {
	Amount   spawners.RandRange
	Patterns *spawners.SpawnTable[string]
	Stencil  BlobStencil
}

func (s *BlobStep) Apply(ctx *MapContext) error {
	amount := s.Amount.Pick(ctx.RNG)
	if amount <= 0 {
		return nil
	}
	if s.Patterns == nil || !s.Patterns.CanPick() {
		return fmt.Errorf("blob patterns: %w", spawners.ErrEmptySpawnSource)
	}
	stencil := s.Stencil
	if stencil == nil {
		stencil = AllowAllStencil{}
	}

	placed := 0
	for i := 0; i < amount; i++ {
		for try := 0; try < MaxBlobTries; try++ {
			ok, err := s.tryPlace(ctx, stencil)
			if err != nil {
				return err
			}
			if ok {
				placed++
				break
			}
		}
	}
	ctx.Log.Debug("blobs placed", "wanted", amount, "placed", placed)
	return nil
}

func (s *BlobStep) tryPlace(ctx *MapContext, stencil BlobStencil) (bool, error) {
	name, err := s.Patterns.Pick(ctx.RNG)
	if err != nil {
		return false, err
	}
	frag, err := ctx.Fragments.Get(name)
	if err != nil {
		return false, err
	}
	if ctx.RNG.Intn(2) == 0 {
		frag = frag.Transposed()
	}

	offset := components.Loc{
		X: ctx.RNG.Intn(max(1, ctx.Map.Width-frag.Width)),
		Y: ctx.RNG.Intn(max(1, ctx.Map.Height-frag.Height)),
	}
	footprint := components.Rect{X: offset.X, Y: offset.Y, Width: frag.Width, Height: frag.Height}
	isValid := blobTest(ctx, frag, offset)

	if !stencil.Test(ctx.Map, footprint, isValid) {
		return false, nil
	}

	for _, loc := range footprint.Locs() {
		if !isValid(loc) {
			continue
		}
		tile, _ := frag.At(loc.X-offset.X, loc.Y-offset.Y)
		ctx.Map.SetTerrain(loc, tile.Terrain)
		ctx.Map.SetEffect(loc, tile.Effect.Clone())
	}
	return true, nil
}

// blobTest reports whether the fragment covers loc, loc is on the map,
// and loc is not room floor
func blobTest(ctx *MapContext, frag *data.Fragment, offset components.Loc) func(components.Loc) bool {
	return func(loc components.Loc) bool {
		if _, ok := frag.At(loc.X-offset.X, loc.Y-offset.Y); !ok {
			return false
		}
		terrain, ok := ctx.Map.TerrainAt(loc)
		if !ok {
			return false
		}
		return terrain != ctx.RoomTerrain
	}
}
