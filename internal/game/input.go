package game

import (
	"github.com/Garsondee/Skirmish/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// frameInput is the raw host input for one frame.
type frameInput struct {
	cursorX, cursorY int

	up, down, left, right bool

	clicked  bool // left button went down this frame
	fireHeld bool

	slotKey int // 1-based slot from the number row, 0 if none
	respawn bool
	quit    bool
	report  bool
}

var slotKeys = [...]ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// readFrame polls ebiten for this frame's input.
func readFrame() frameInput {
	var fi frameInput
	fi.cursorX, fi.cursorY = ebiten.CursorPosition()

	fi.up = anyPressed(ebiten.KeyW, ebiten.KeyArrowUp)
	fi.down = anyPressed(ebiten.KeyS, ebiten.KeyArrowDown)
	fi.left = anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft)
	fi.right = anyPressed(ebiten.KeyD, ebiten.KeyArrowRight)

	fi.clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	fi.fireHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	for i, k := range slotKeys {
		if inpututil.IsKeyJustPressed(k) {
			fi.slotKey = i + 1
		}
	}
	fi.respawn = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	fi.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	fi.report = inpututil.IsKeyJustPressed(ebiten.KeyF9)
	return fi
}

// simInput decodes a frame's input for the sim. A click on the weapon bar
// selects that slot and does not fire.
func simInput(fi frameInput, screenW, screenH int) sim.Input {
	in := sim.Input{
		Pointer:    sim.V(float64(fi.cursorX), float64(fi.cursorY)),
		ScreenW:    float64(screenW),
		ScreenH:    float64(screenH),
		Up:         fi.up,
		Down:       fi.down,
		Left:       fi.left,
		Right:      fi.right,
		WeaponSlot: fi.slotKey,
		Fire:       sim.Trigger{Pressed: fi.clicked, Held: fi.fireHeld},
		Respawn:    fi.respawn,
		Quit:       fi.quit,
	}
	if slot := slotAt(fi.cursorX, fi.cursorY, screenW, screenH); slot != 0 {
		if fi.clicked {
			in.WeaponSlot = slot
		}
		in.Fire = sim.Trigger{}
	}
	return in
}
