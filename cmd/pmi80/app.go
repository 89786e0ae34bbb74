package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/hexaflex/pmi80/arch"
	"github.com/hexaflex/pmi80/devices/tesla/mgf"
	"github.com/hexaflex/pmi80/devices/tesla/vv55"
	"github.com/hexaflex/pmi80/machine"
)

// App defines application context.
type App struct {
	config       *Config          // Application configuration.
	window       *glfw.Window     // OpenGL/GLFW context.
	machine      *machine.Machine // The emulated board.
	renderer     *renderer        // Segment quad renderer.
	done         chan struct{}    // Tick loop exit signaller.
	titleUpdated time.Time        // Value used to periodically update window title.
	lastRendered time.Time        // Last time a frame was rendered.
	lastCycles   uint64           // Cycle count at the last title update.
}

// NewApp creates a new application instance using the given
// configuration and monitor ROM image.
func NewApp(config *Config, rom []byte) *App {
	var a App
	a.config = config
	a.renderer = newRenderer()
	a.done = make(chan struct{})

	var probe vv55.ProbeFunc
	if config.Loopback {
		probe = func() (vv55.Expander, error) { return vv55.Loopback(), nil }
	}

	a.machine = machine.New(machine.Config{
		ROM:   rom,
		Paint: a.renderer.paint,
		Store: mgf.NewDirStore(config.Tape),
		Probe: probe,
	})
	a.machine.Attach(newCore(a.machine.Memory(), a.machine.Bus()))
	return &a
}

// Run runs the application and does not return until it is finished
// or an error occured during initialization.
func (a *App) Run() error {
	if err := a.initGL(); err != nil {
		return err
	}

	defer a.dispose()

	log.Println(Version())
	printHelp()

	if err := a.machine.Startup(); err != nil {
		return err
	}

	if !a.config.Paused {
		a.machine.Command(machine.CmdToggleRun)
	}

	go a.tick()

	for !a.window.ShouldClose() {
		a.mainLoop()
	}

	return nil
}

// tick drives the scheduler at its 1 ms period. It runs off the main
// thread; the machine serializes ticks against keypad commands itself.
func (a *App) tick() {
	t := time.NewTicker(time.Millisecond)
	defer t.Stop()

	for {
		select {
		case <-a.done:
			return
		case <-t.C:
			a.machine.Tick()
		}
	}
}

// mainLoop performs all main loop operations.
func (a *App) mainLoop() {
	// Periodically render display contents.
	if time.Since(a.lastRendered) >= time.Second/60 {
		a.lastRendered = time.Now()
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		a.renderer.draw()
		a.window.SwapBuffers()
	}

	// Periodically update the window title to show the effective clock frequency.
	if since := time.Since(a.titleUpdated); since >= time.Second*2 {
		a.titleUpdated = time.Now()
		cycles := a.machine.Cycles()
		freq := prettyFrequency(float64(cycles-a.lastCycles) / since.Seconds())
		a.lastCycles = cycles
		a.window.SetTitle(fmt.Sprintf("%s %s - %s", AppName, AppVersion, freq))
	}

	glfw.PollEvents()
}

// dispose ensures openGL/GLFW and other resources are cleaned up.
func (a *App) dispose() {
	close(a.done)
	a.machine.Shutdown()
	a.renderer.dispose()

	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}

	glfw.Terminate()
}

func (a *App) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}

	// Matrix keys track both edges.
	if k, ok := matrixKey(key); ok {
		if action == glfw.Press {
			a.machine.Press(k)
		} else {
			a.machine.Release(k)
		}
		return
	}

	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyEscape:
		a.window.SetShouldClose(true)
	case glfw.KeyF1:
		printHelp()
	case glfw.KeyF3:
		a.printBlocks()
	case glfw.KeyBackspace:
		a.machine.Command(machine.CmdReset)
	case glfw.KeyI:
		a.machine.Command(machine.CmdInterrupt)
	case glfw.KeyQ:
		a.machine.Command(machine.CmdToggleRun)
	}
}

// matrixKey maps a host key to its keypad equivalent.
func matrixKey(key glfw.Key) (arch.Key, bool) {
	switch {
	case key >= glfw.Key0 && key <= glfw.Key9:
		return arch.Key0 + arch.Key(key-glfw.Key0), true
	case key >= glfw.KeyA && key <= glfw.KeyF:
		return arch.KeyA + arch.Key(key-glfw.KeyA), true
	}

	switch key {
	case glfw.KeyEnter:
		return arch.KeyEX, true
	case glfw.KeyR:
		return arch.KeyR, true
	case glfw.KeyTab:
		return arch.KeyBR, true
	case glfw.KeyM:
		return arch.KeyM, true
	case glfw.KeyL:
		return arch.KeyL, true
	case glfw.KeyS:
		return arch.KeyS, true
	}

	return 0, false
}

// printBlocks writes a summary of the mounted tape to stdout.
func (a *App) printBlocks() {
	ids, err := a.machine.Tape().Blocks()
	if err != nil {
		log.Println(err)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d blocks recorded, %d free:", len(ids), 256-len(ids))
	for _, id := range ids {
		fmt.Fprintf(&sb, " %02x", id)
	}
	log.Println(sb.String())
}

// initGL initializes GLFW and openGL.
func (a *App) initGL() error {
	err := glfw.Init()
	if err != nil {
		return errors.Wrapf(err, "glfw.Init failed")
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	width := DisplayWidth * a.config.ScaleFactor
	height := DisplayHeight * a.config.ScaleFactor

	a.window, err = glfw.CreateWindow(width, height, "", nil, nil)
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "glfw.CreateWindow failed")
	}

	a.window.MakeContextCurrent()
	a.window.SetKeyCallback(a.keyCallback)

	glfw.SwapInterval(0)

	err = gl.Init()
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "gl.Init failed")
	}

	gl.ClearColor(0, 0, 0, 1.0)
	return a.renderer.init()
}

// printHelp writes a short overview of supported shortcut keys to stdout.
func printHelp() {
	var sb strings.Builder
	sb.WriteString("shortcut keys:\n")
	sb.WriteString(" ESC        Exit the emulator.\n")
	sb.WriteString(" F1         Display this help.\n")
	sb.WriteString(" F3         List the blocks on the mounted tape.\n")
	sb.WriteString(" BACKSPACE  RE: reset the CPU.\n")
	sb.WriteString(" I          I: raise an interrupt.\n")
	sb.WriteString(" Q          Start/Stop program execution.\n")
	sb.WriteString(" 0-9 A-F    Keypad digits.\n")
	sb.WriteString(" ENTER      EX    TAB  BR\n")
	sb.WriteString(" R M L S    Keypad function keys.")
	log.Println(sb.String())
}

// prettyFrequency returns a human-readable version of the given clock frequency in herz.
func prettyFrequency(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.2f MHz", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2f KHz", v/1e3)
	default:
		return fmt.Sprintf("%.2f Hz", v)
	}
}
