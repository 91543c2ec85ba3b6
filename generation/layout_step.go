package generation

import (
	"fmt"

	"floorgen/components"
)

// bspNode is a node in the binary space partitioning tree
type bspNode struct {
	area        components.Rect
	left, right *bspNode
	room        *RoomPlan
	isolated    bool
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// RoomLayoutStep carves rectangular rooms with binary space partitioning and
// joins sibling subtrees with L-shaped corridors
type RoomLayoutStep struct {
	MaxDepth    int
	MinNodeSize int
	// IsolateChance is the percent chance a leaf room gets no corridors
	IsolateChance int
}

func (s *RoomLayoutStep) Apply(ctx *MapContext) error {
	m := ctx.Map
	m.Fill(m.Bounds(), components.TerrainWall)

	// keep a solid wall border around the floor
	root := &bspNode{area: components.Rect{X: 1, Y: 1, Width: m.Width - 2, Height: m.Height - 2}}
	s.split(ctx, root, 0)

	var leaves []*bspNode
	s.createRooms(ctx, root, &leaves)
	if len(leaves) == 0 {
		return fmt.Errorf("no room fits a %dx%d floor", m.Width, m.Height)
	}

	for i, leaf := range leaves {
		// the first room always joins the main network
		if i > 0 && s.IsolateChance > 0 && ctx.RNG.Intn(100) < s.IsolateChance {
			leaf.isolated = true
			leaf.room.SetComponent(components.NoConnectComponent{})
		}
		m.Fill(leaf.room.Bounds, ctx.RoomTerrain)
		ctx.Rooms = append(ctx.Rooms, leaf.room)
	}

	s.connect(ctx, root)
	ctx.Log.Debug("rooms laid out", "rooms", len(ctx.Rooms))
	return nil
}

// split recursively divides node until MaxDepth or MinNodeSize stops it
func (s *RoomLayoutStep) split(ctx *MapContext, node *bspNode, depth int) {
	if depth >= s.MaxDepth {
		return
	}

	// Split across the longer side when one side is 25% longer; otherwise pick randomly
	area := node.area
	horizontal := ctx.RNG.Intn(2) == 0
	if float64(area.Width) > float64(area.Height)*1.25 {
		horizontal = false
	} else if float64(area.Height) > float64(area.Width)*1.25 {
		horizontal = true
	}

	minSize := s.MinNodeSize
	if horizontal && area.Height < 2*minSize {
		horizontal = false
	} else if !horizontal && area.Width < 2*minSize {
		horizontal = true
	}
	if (horizontal && area.Height < 2*minSize) || (!horizontal && area.Width < 2*minSize) {
		return
	}

	if horizontal {
		pos := minSize + ctx.RNG.Intn(area.Height-2*minSize+1)
		node.left = &bspNode{area: components.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: pos}}
		node.right = &bspNode{area: components.Rect{X: area.X, Y: area.Y + pos, Width: area.Width, Height: area.Height - pos}}
	} else {
		pos := minSize + ctx.RNG.Intn(area.Width-2*minSize+1)
		node.left = &bspNode{area: components.Rect{X: area.X, Y: area.Y, Width: pos, Height: area.Height}}
		node.right = &bspNode{area: components.Rect{X: area.X + pos, Y: area.Y, Width: area.Width - pos, Height: area.Height}}
	}

	s.split(ctx, node.left, depth+1)
	s.split(ctx, node.right, depth+1)
}

// createRooms places one room in every leaf big enough to hold it, collecting
// the leaves in left-to-right order
func (s *RoomLayoutStep) createRooms(ctx *MapContext, node *bspNode, leaves *[]*bspNode) {
	if !node.isLeaf() {
		s.createRooms(ctx, node.left, leaves)
		s.createRooms(ctx, node.right, leaves)
		return
	}

	area := node.area
	padX := 1 + ctx.RNG.Intn(3)
	padY := 1 + ctx.RNG.Intn(3)
	if area.Width-2*padX < 4 {
		padX = 1
	}
	if area.Height-2*padY < 4 {
		padY = 1
	}
	width := area.Width - 2*padX
	height := area.Height - 2*padY
	if width < 3 || height < 3 {
		return
	}

	node.room = NewRoomPlan(components.Rect{X: area.X + padX, Y: area.Y + padY, Width: width, Height: height})
	*leaves = append(*leaves, node)
}

// connect joins the left and right subtree of every internal node
func (s *RoomLayoutStep) connect(ctx *MapContext, node *bspNode) {
	if node.isLeaf() {
		return
	}
	s.connect(ctx, node.left)
	s.connect(ctx, node.right)

	a := findConnectable(node.left)
	b := findConnectable(node.right)
	if a == nil || b == nil {
		return
	}
	carveCorridor(ctx, a.Bounds.Center(), b.Bounds.Center())
}

// findConnectable returns the first non-isolated room in the subtree
func findConnectable(node *bspNode) *RoomPlan {
	if node == nil {
		return nil
	}
	if node.isLeaf() {
		if node.room != nil && !node.isolated {
			return node.room
		}
		return nil
	}
	if room := findConnectable(node.left); room != nil {
		return room
	}
	return findConnectable(node.right)
}

// carveCorridor digs an L-shaped corridor, horizontal or vertical leg first at random
func carveCorridor(ctx *MapContext, from, to components.Loc) {
	if ctx.RNG.Intn(2) == 0 {
		carveHorizontal(ctx, from.X, to.X, from.Y)
		carveVertical(ctx, from.Y, to.Y, to.X)
	} else {
		carveVertical(ctx, from.Y, to.Y, from.X)
		carveHorizontal(ctx, from.X, to.X, to.Y)
	}
}

func carveHorizontal(ctx *MapContext, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		ctx.Map.SetTerrain(components.Loc{X: x, Y: y}, ctx.RoomTerrain)
	}
}

func carveVertical(ctx *MapContext, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		ctx.Map.SetTerrain(components.Loc{X: x, Y: y}, ctx.RoomTerrain)
	}
}
