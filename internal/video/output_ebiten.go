//go:build !headless

package video

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenOutput renders the decoded framebuffer through ebiten, grounded
// on the teacher's video_backend_ebiten.go: a mutex-protected pixel
// buffer written by UpdateFrame and blitted to screen on Draw, with the
// ebiten game loop driven on its own goroutine via RunGame.
type EbitenOutput struct {
	running     bool
	window      *ebiten.Image
	frameBuffer []byte
	bufferMutex sync.RWMutex
	frameCount  uint64

	// PollInput is called once per Update tick so the caller can drain
	// key events into the cabinet before the next Draw.
	PollInput func()
}

// NewEbitenOutput returns a backend sized for the cabinet's fixed
// rotated display.
func NewEbitenOutput() *EbitenOutput {
	return &EbitenOutput{
		frameBuffer: make([]byte, ScreenWidth*ScreenHeight*4),
	}
}

func (eo *EbitenOutput) Start() error {
	if eo.running {
		return nil
	}
	eo.running = true
	ebiten.SetWindowSize(ScreenWidth*3, ScreenHeight*3)
	ebiten.SetWindowTitle("Space Invaders")
	ebiten.SetWindowResizable(true)
	ebiten.SetVsyncEnabled(true)

	go func() {
		if err := ebiten.RunGame(eo); err != nil {
			fmt.Printf("ebiten: %v\n", err)
		}
	}()
	return nil
}

func (eo *EbitenOutput) Stop() error {
	eo.running = false
	return nil
}

func (eo *EbitenOutput) Close() error { return eo.Stop() }

func (eo *EbitenOutput) IsStarted() bool { return eo.running }

func (eo *EbitenOutput) UpdateFrame(data []byte) error {
	eo.bufferMutex.Lock()
	copy(eo.frameBuffer, data)
	eo.bufferMutex.Unlock()
	return nil
}

// SetPollInput installs the per-tick input hook. main.go finds it
// through an interface assertion on the Output it creates.
func (eo *EbitenOutput) SetPollInput(fn func()) {
	eo.PollInput = fn
}

func (eo *EbitenOutput) GetFrameCount() uint64 {
	eo.bufferMutex.RLock()
	defer eo.bufferMutex.RUnlock()
	return eo.frameCount
}

// Update implements ebiten.Game.
func (eo *EbitenOutput) Update() error {
	if ebiten.IsWindowBeingClosed() || !eo.running {
		return ebiten.Termination
	}
	if eo.PollInput != nil {
		eo.PollInput()
	}
	return nil
}

// Draw implements ebiten.Game.
func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	if eo.window == nil {
		eo.window = ebiten.NewImage(ScreenWidth, ScreenHeight)
	}
	eo.bufferMutex.Lock()
	eo.window.WritePixels(eo.frameBuffer)
	eo.frameCount++
	eo.bufferMutex.Unlock()
	screen.DrawImage(eo.window, nil)
}

// Layout implements ebiten.Game.
func (eo *EbitenOutput) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}
