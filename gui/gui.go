package gui

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/they4kman/sweep/game"
	"github.com/they4kman/sweep/gui/clock"
)

const (
	cellWidth      = 20
	headerHeight   = 50
	minWindowWidth = 200

	// Opacity of the overlay on the director's latest moves
	annotationAlpha = 0.5
)

type Config struct {
	NewBoard func() *game.Board
	// Optional; enables stepping (Right arrow) and autoplay (Space)
	NewDirector func() game.Director
	// Delay between director steps while autoplaying
	DirectorInterval time.Duration
}

var numberColors = [9]color.Color{
	1: colornames.Blue,
	2: colornames.Green,
	3: colornames.Red,
	4: colornames.Navy,
	5: colornames.Maroon,
	6: colornames.Teal,
	7: colornames.Black,
	8: colornames.Gray,
}

// Run opens the game window and blocks until it is closed. It must be called
// from within pixelgl.Run.
func Run(config Config) error {
	if config.DirectorInterval <= 0 {
		config.DirectorInterval = 200 * time.Millisecond
	}

	cfg := pixelgl.WindowConfig{
		Title:  "sweep",
		Bounds: pixel.R(0, 0, minWindowWidth, headerHeight),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("opening window: %w", err)
	}
	defer win.Destroy()

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	imd := imdraw.New(nil)

	var (
		board        *game.Board
		director     game.Director
		autoplay     bool
		gameClock    = clock.New()
		annotations  []game.CellAction
		scoreText    *text.Text
		timerText    *text.Text
		numbersText  *text.Text
		cellPosText  *text.Text
		hoveredCell  *game.Position
		boardTopLeft pixel.Vec
	)

	resetBoard := func() {
		board = config.NewBoard()
		autoplay = false
		annotations = nil
		gameClock.Reset()
		if config.NewDirector != nil {
			director = config.NewDirector()
			director.Init(board)
		}

		width := math.Max(float64(board.Cols()*cellWidth), minWindowWidth)
		height := float64(board.Rows()*cellWidth + headerHeight)
		win.SetBounds(pixel.R(0, 0, width, height))

		topLeft := pixel.V(0, height)
		boardTopLeft = topLeft.Sub(pixel.V(0, headerHeight))

		scoreText = text.New(topLeft.Add(pixel.V(20, -30)), basicAtlas)
		timerText = text.New(pixel.V(width-45, height-30), basicAtlas)
		cellPosText = text.New(pixel.V(width/2-25, height-30), basicAtlas)
		cellPosText.Color = colornames.Darkcyan
		numbersText = text.New(pixel.ZV, basicAtlas)

		game.Log.WithFields(logrus.Fields{
			"rows":  board.Rows(),
			"cols":  board.Cols(),
			"mines": board.TotalMines(),
			"seed":  board.Seed(),
		}).Info("new game")
	}

	screenToGrid := func(pos pixel.Vec) *game.Position {
		if pos.X < 0 || pos.Y < 0 {
			return nil
		}
		col := int(pos.X) / cellWidth
		row := int(boardTopLeft.Y-pos.Y) / cellWidth
		if pos.Y > boardTopLeft.Y || !board.InBounds(row, col) {
			return nil
		}
		return &game.Position{Row: row, Col: col}
	}

	cellRect := func(row, col int) pixel.Rect {
		corner := boardTopLeft.Add(pixel.V(float64(col*cellWidth), -float64((row+1)*cellWidth)))
		return pixel.R(corner.X, corner.Y, corner.X+cellWidth, corner.Y+cellWidth)
	}

	handleResult := func(result game.RevealResult) {
		gameClock.Observe(board.Phase())
		if result.Outcome != game.OutcomeContinue {
			game.Log.WithFields(logrus.Fields{
				"outcome": result.Outcome,
				"seconds": gameClock.Seconds(),
			}).Info("game over")
		}
	}

	resetBoard()

	var (
		frames        = 0
		second        = time.Tick(time.Second)
		directorTicks = time.Tick(config.DirectorInterval)
	)

	bgColor := colornames.Gainsboro
	for !win.Closed() {
		win.Update()
		win.Clear(bgColor)

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		scoreText.Clear()
		scoreText.Color = colornames.Black
		fmt.Fprintf(scoreText, "%03d", board.MinesRemaining())
		switch board.Phase() {
		case game.Won:
			scoreText.Color = colornames.Green
			fmt.Fprint(scoreText, "   WIN!")
		case game.Lost:
			scoreText.Color = colornames.Red
			fmt.Fprint(scoreText, "   LOSE :(")
		}
		scoreText.Draw(win, pixel.IM)

		timerText.Clear()
		timerText.Color = colornames.Black
		fmt.Fprintf(timerText, "%03d", gameClock.Seconds())
		timerText.Draw(win, pixel.IM)

		if win.MouseInsideWindow() {
			hoveredCell = screenToGrid(win.MousePosition())
		} else {
			hoveredCell = nil
		}

		cellPosText.Clear()
		if hoveredCell != nil {
			fmt.Fprintf(cellPosText, "(%d, %d)", hoveredCell.Row, hoveredCell.Col)
			cellPosText.Draw(win, pixel.IM)
		}

		imd.Clear()
		numbersText.Clear()
		for row := 0; row < board.Rows(); row++ {
			for col := 0; col < board.Cols(); col++ {
				drawCell(imd, numbersText, cellRect(row, col), board.View(row, col))
			}
		}
		for _, action := range annotations {
			drawAnnotation(imd, cellRect(action.Row, action.Col), action.Action)
		}
		imd.Draw(win)
		numbersText.Draw(win, pixel.IM)

		if !board.CanPlay() {
			// Start a new game with Enter
			if win.JustPressed(pixelgl.KeyEnter) || win.JustPressed(pixelgl.KeyN) {
				resetBoard()
			}
			continue
		}

		if win.JustPressed(pixelgl.KeyN) {
			resetBoard()
			continue
		}

		if director != nil {
			if win.JustPressed(pixelgl.KeySpace) {
				autoplay = !autoplay
			}

			step := win.JustPressed(pixelgl.KeyRight)
			if autoplay {
				select {
				case <-directorTicks:
					step = true
				default:
				}
			}
			if step {
				if result, acted := board.Step(director); acted {
					annotations = result.Applied
					handleResult(result.RevealResult)
				} else {
					annotations = nil
					autoplay = false
				}
			}
		}

		if hoveredCell != nil {
			if win.JustPressed(pixelgl.MouseButtonLeft) ||
				win.JustPressed(pixelgl.MouseButtonRight) ||
				win.JustPressed(pixelgl.MouseButtonMiddle) {
				annotations = nil
			}
			if win.JustPressed(pixelgl.MouseButtonLeft) {
				handleResult(board.Reveal(hoveredCell.Row, hoveredCell.Col))
			}
			if win.JustPressed(pixelgl.MouseButtonRight) {
				board.ToggleFlag(hoveredCell.Row, hoveredCell.Col)
			}
			if win.JustPressed(pixelgl.MouseButtonMiddle) {
				handleResult(board.Chord(hoveredCell.Row, hoveredCell.Col))
			}
		}
	}

	return nil
}

func drawCell(imd *imdraw.IMDraw, numbers *text.Text, rect pixel.Rect, view game.CellView) {
	inner := pixel.R(rect.Min.X+1, rect.Min.Y+1, rect.Max.X-1, rect.Max.Y-1)
	center := rect.Center()

	background := colornames.Darkgray
	switch {
	case view.Detonated:
		background = colornames.Red
	case view.State == game.Revealed:
		background = colornames.Whitesmoke
	}
	imd.Color = background
	imd.Push(inner.Min, inner.Max)
	imd.Rectangle(0) // 0 = filled

	switch {
	case view.State == game.Flagged:
		imd.Color = colornames.Red
		if view.WrongFlag {
			imd.Color = colornames.Orange
		}
		imd.Push(center.Add(pixel.V(-4, -5)), center.Add(pixel.V(-4, 6)), center.Add(pixel.V(5, 2)))
		imd.Polygon(0)

		if view.WrongFlag {
			imd.Color = colornames.Black
			imd.Push(inner.Min, inner.Max)
			imd.Line(2)
			imd.Push(pixel.V(inner.Min.X, inner.Max.Y), pixel.V(inner.Max.X, inner.Min.Y))
			imd.Line(2)
		}

	case view.State == game.Revealed && view.Mine:
		imd.Color = colornames.Black
		imd.Push(center)
		imd.Circle(cellWidth/4, 0)

	case view.State == game.Revealed && view.Adjacent > 0:
		label := strconv.Itoa(view.Adjacent)
		bounds := numbers.BoundsOf(label)
		numbers.Dot = center.Sub(pixel.V(bounds.W()/2, bounds.H()/4))
		numbers.Color = numberColors[view.Adjacent]
		fmt.Fprint(numbers, label)
	}
}

// drawAnnotation tints a cell the director just acted on: red for a click,
// blue for a flag, green for a chord
func drawAnnotation(imd *imdraw.IMDraw, rect pixel.Rect, action game.Action) {
	baseColor := pixel.RGB(1, 0, 0)
	switch action {
	case game.RightClick:
		baseColor = pixel.RGB(0, 0, 1)
	case game.MiddleClick:
		baseColor = pixel.RGB(0, 1, 0)
	}

	imd.Color = baseColor.Mul(pixel.Alpha(annotationAlpha))
	imd.Push(rect.Min, rect.Max)
	imd.Rectangle(0)
}
