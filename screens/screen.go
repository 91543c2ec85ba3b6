package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Screen is one layer of the previewer
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// Closer is implemented by screens that can ask to be popped
type Closer interface {
	Closed() bool
}

// ScreenStack manages a stack of screens. Only the top screen receives updates;
// every screen is drawn from bottom to top.
type ScreenStack struct {
	screens []Screen
}

func NewScreenStack() *ScreenStack {
	return &ScreenStack{
		screens: make([]Screen, 0),
	}
}

// Push adds a new screen to the top of the stack
func (s *ScreenStack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes the top screen from the stack
func (s *ScreenStack) Pop() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	top := s.screens[len(s.screens)-1]
	s.screens = s.screens[:len(s.screens)-1]
	return top
}

// Peek returns the top screen without removing it
func (s *ScreenStack) Peek() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

func (s *ScreenStack) Len() int {
	return len(s.screens)
}

// Update updates the top screen and pops it once it reports itself closed
func (s *ScreenStack) Update() error {
	top := s.Peek()
	if top == nil {
		return nil
	}
	if err := top.Update(); err != nil {
		return err
	}
	if c, ok := top.(Closer); ok && c.Closed() {
		s.Pop()
	}
	return nil
}

func (s *ScreenStack) Draw(screen *ebiten.Image) {
	for _, scr := range s.screens {
		scr.Draw(screen)
	}
}

// Layout handles layout for the top screen
func (s *ScreenStack) Layout(outsideWidth, outsideHeight int) (int, int) {
	if top := s.Peek(); top != nil {
		return top.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
