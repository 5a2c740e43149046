// ring-demo is a small tab-strip navigator driven by a ring zipper:
// h/l (or the arrow keys) step the focus around the ring, a letter key
// refocuses to the next tab whose name starts with it, and 0/$ jump to
// the first/last tab. Each move plays a short tone.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/zipring/zipper"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneMs       = 40
	stepToneHz   = 660
	jumpToneHz   = 880
	stuckToneHz  = 220
	frameMs      = 33
	tabPadding   = 2
	statusHeight = 2
)

type Tab struct {
	Name  string
	Color tcell.Color
}

func (t Tab) String() string {
	return t.Name
}

var defaultTabs = []Tab{
	{"home", tcell.ColorGreen},
	{"search", tcell.ColorBlue},
	{"mail", tcell.ColorYellow},
	{"news", tcell.ColorRed},
	{"music", tcell.ColorPurple},
	{"settings", tcell.ColorTeal},
	{"help", tcell.ColorOlive},
}

type App struct {
	screen        tcell.Screen
	width, height int

	ring   *zipper.Zipper[Tab]
	moves  int
	status string

	audioInit bool
}

func NewApp(tabs []Tab) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	a := &App{
		screen: screen,
		ring:   zipper.FromSlice(tabs),
		status: "h/l step · letter jumps · 0/$ ends · ESC quits",
	}
	a.width, a.height = screen.Size()

	if err := a.initAudio(); err != nil {
		// Non-fatal, the demo works silently
		log.Printf("Audio initialization failed: %v", err)
	}

	return a, nil
}

func (a *App) initAudio() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		a.audioInit = true
	}
	return err
}

func (a *App) playTone(hz float64) {
	if !a.audioInit {
		return
	}
	sine, err := generators.SineTone(sampleRate, hz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneMs*time.Millisecond), sine))
}

func (a *App) stepForward() {
	a.ring.StepForwards()
	a.moves++
	a.playTone(stepToneHz)
}

func (a *App) stepBackward() {
	a.ring.StepBackwards()
	a.moves++
	a.playTone(stepToneHz)
}

// jumpTo refocuses the ring on the next tab whose name starts with r.
func (a *App) jumpTo(r rune) {
	prefix := strings.ToLower(string(r))
	was := a.ring.Clone()
	a.ring.Refocus(func(t Tab) bool {
		return strings.HasPrefix(strings.ToLower(t.Name), prefix)
	})
	if a.ring.EqualFunc(was, func(x, y Tab) bool { return x.Name == y.Name }) {
		a.playTone(stuckToneHz)
		return
	}
	a.moves++
	a.playTone(jumpToneHz)
}

func (a *App) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (a *App) draw() {
	a.screen.Clear()

	// Tab strip in rotation order, focus first and highlighted.
	x := 1
	first := true
	for tab := range a.ring.All() {
		label := " " + tab.Name + " "
		style := tcell.StyleDefault.Foreground(tab.Color)
		if first {
			style = style.Reverse(true).Bold(true)
		}
		a.drawText(x, 1, label, style)
		x += len(label) + tabPadding
		first = false
	}

	// Focused tab body.
	if tab, ok := a.ring.Focus(); ok {
		body := "◆ " + tab.Name
		a.drawText(a.width/2-len(body)/2, a.height/2, body,
			tcell.StyleDefault.Foreground(tab.Color).Bold(true))
	}

	// Status area.
	ringLine := a.ring.String()
	a.drawText(1, a.height-statusHeight, ringLine,
		tcell.StyleDefault.Foreground(tcell.ColorGray))
	a.drawText(1, a.height-1, fmt.Sprintf("%s · moves: %d", a.status, a.moves),
		tcell.StyleDefault.Foreground(tcell.ColorSilver))

	a.screen.Show()
}

func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRight:
			a.stepForward()
		case tcell.KeyLeft:
			a.stepBackward()
		case tcell.KeyRune:
			switch r := ev.Rune(); {
			case r == 'q':
				return false
			case r == 'l':
				a.stepForward()
			case r == 'h':
				a.stepBackward()
			case r == '0':
				a.ring.ResetStart()
				a.playTone(jumpToneHz)
			case r == '$':
				a.ring.ResetEnd()
				a.playTone(jumpToneHz)
			case r >= 'a' && r <= 'z':
				a.jumpTo(r)
			}
		}

	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
	}

	return true
}

func (a *App) run() {
	ticker := time.NewTicker(frameMs * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case <-ticker.C:
			a.draw()
		}
	}
}

func (a *App) cleanup() {
	if a.audioInit {
		speaker.Close()
	}
	a.screen.Fini()
}

func main() {
	app, err := NewApp(defaultTabs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
