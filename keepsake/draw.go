package keepsake

import (
	"fmt"
	_ "image/png"
	"io/ioutil"
	"math"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const dialogueWrapWidth = 56

type DrawContext struct {
	imd *imdraw.IMDraw

	// Fonts
	titleFont *text.Atlas

	// Text objects
	titleTxt    *text.Text
	centeredTxt *text.Text
	dialogueTxt *text.Text
	statusTxt   *text.Text
	cornerTxt   *text.Text

	// Scene portraits, keyed by image path. A nil entry means the file was
	// tried and found wanting; a placeholder frame is drawn instead.
	pictures map[string]*pixel.Sprite
}

var basicFont *text.Atlas
var smallFont *text.Atlas

func loadFace(path string, size float64) font.Face {
	ttfData, err := ioutil.ReadFile(path)
	if err != nil {
		fmt.Printf("[Draw] font %s unavailable, using builtin: %v\n", path, err)
		return basicfont.Face7x13
	}
	ttf, err := truetype.Parse(ttfData)
	if err != nil {
		fmt.Printf("[Draw] font %s unreadable, using builtin: %v\n", path, err)
		return basicfont.Face7x13
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size: size,
		DPI:  96,
	})
}

func NewDrawContext(cfg pixelgl.WindowConfig) *DrawContext {
	drawContext := new(DrawContext)

	drawContext.imd = imdraw.New(nil)
	drawContext.pictures = map[string]*pixel.Sprite{}

	titleFace := loadFace("./font/gabriel_serif/Gabriel Serif.ttf", 24.0)
	normalFace := loadFace("./font/comfortaa/Comfortaa-Regular.ttf", 18.0)
	smallFace := loadFace("./font/comfortaa/Comfortaa-Regular.ttf", 14.0)

	drawContext.titleFont = text.NewAtlas(titleFace, text.ASCII)
	basicFont = text.NewAtlas(normalFace, text.ASCII)
	smallFont = text.NewAtlas(smallFace, text.ASCII)

	drawContext.titleTxt = text.New(pixel.V(0, 128), drawContext.titleFont)
	drawContext.centeredTxt = text.New(pixel.V(0, 0), basicFont)
	drawContext.centeredTxt.LineHeight = basicFont.LineHeight() * 1.5
	drawContext.dialogueTxt = text.New(pixel.V(0, 0), basicFont)
	drawContext.dialogueTxt.LineHeight = basicFont.LineHeight() * 1.4
	drawContext.statusTxt = text.New(pixel.V(0, 0), smallFont)
	drawContext.cornerTxt = text.New(pixel.V(0, 0), smallFont)

	return drawContext
}

func (d *DrawContext) spriteFor(path string) *pixel.Sprite {
	sprite, seen := d.pictures[path]
	if seen {
		return sprite
	}
	pic, err := loadPicture(path)
	if err != nil {
		fmt.Printf("[Draw] picture %s unavailable: %v\n", path, err)
		d.pictures[path] = nil
		return nil
	}
	sprite = pixel.NewSprite(pic, pic.Bounds())
	d.pictures[path] = sprite
	return sprite
}

func (d *DrawContext) drawCenteredLine(target pixel.Target, txt *text.Text, orig pixel.Vec, line string, scale float64) {
	txt.Clear()
	txt.Orig = orig
	txt.Dot.X -= txt.BoundsOf(line).W() / 2
	fmt.Fprintln(txt, line)
	txt.Draw(target, pixel.IM.Scaled(txt.Orig, scale))
}

func (d *DrawContext) drawMenu(win *pixelgl.Window, menu *menu) {
	for _, item := range menu.options {
		d.centeredTxt.Color = colornames.White
		if item == menu.options[menu.selection] {
			d.centeredTxt.Color = colornames.Deepskyblue
			d.imd.Push(
				d.centeredTxt.Dot.Add(
					pixel.V(-8.0, (d.centeredTxt.LineHeight/2.0)-10),
				),
			)
			d.imd.Circle(2.0, 4.0)
		}
		fmt.Fprintln(d.centeredTxt, item)
	}
	d.centeredTxt.Draw(win, pixel.IM.Scaled(d.centeredTxt.Orig, 1))
}

func DrawApp(win *pixelgl.Window, app *app, d *DrawContext) {
	win.Clear(colornames.Black)
	d.imd.Clear()

	center := win.Bounds().Center()
	halfH := win.Bounds().H() / 2

	switch app.state {
	case "start_screen":
		// The title slides up into place over the first few seconds.
		orig := pixel.Lerp(
			center.Add(pixel.V(0.0, -400)),
			center.Add(pixel.V(0.0, 128.0)),
			app.totalTime/6.0,
		)
		d.drawCenteredLine(win, d.titleTxt, orig, appTitle, 5)

	case "main_menu":
		d.drawCenteredLine(win, d.titleTxt, center.Add(pixel.V(0.0, 128.0)), appTitle, 2)

		// Hue-cycled underline, one slow sweep every 16 seconds.
		hue := math.Mod(app.totalTime, 16.0) / 16.0 * 6.0
		d.imd.Color = HSVToColor(hue, 0.6, 1.0)
		d.imd.Push(
			d.titleTxt.Orig.Add(pixel.V(-128, -18.0)),
			d.titleTxt.Orig.Add(pixel.V(128, -18.0)),
		)
		d.imd.Line(1.0)
		d.imd.Color = colornames.White

		d.centeredTxt.Clear()
		d.centeredTxt.Orig = center.Add(pixel.V(-96, 64))
		d.drawMenu(win, &app.menu)

		d.statusTxt.Color = colornames.Grey
		d.drawCenteredLine(win, d.statusTxt, center.Add(pixel.V(0.0, -halfH+40)), app.status.Line(), 1)

	case "card":
		drawCard(win, app, d)

	case "story":
		drawStory(win, app, d)
	}

	d.imd.Draw(win)
}

func drawCard(win *pixelgl.Window, app *app, d *DrawContext) {
	center := win.Bounds().Center()
	portraitAt := center.Add(pixel.V(0.0, 120.0))

	if sprite := d.spriteFor(app.stage.image); sprite != nil {
		sprite.Draw(win, pixel.IM.Moved(portraitAt))
	} else {
		// No picture on disk; an empty frame keeps the layout honest.
		d.imd.Color = colornames.Slategray
		d.imd.Push(
			portraitAt.Add(pixel.V(-160, -120)),
			portraitAt.Add(pixel.V(160, 120)),
		)
		d.imd.Rectangle(2)
		d.imd.Color = colornames.White
	}

	d.dialogueTxt.Clear()
	d.dialogueTxt.Color = colornames.White
	d.dialogueTxt.Orig = center.Add(pixel.V(0.0, -80.0))
	for _, line := range wrapText(app.stage.dialogue, dialogueWrapWidth) {
		d.dialogueTxt.Dot.X = d.dialogueTxt.Orig.X - d.dialogueTxt.BoundsOf(line).W()/2
		fmt.Fprintln(d.dialogueTxt, line)
	}
	d.dialogueTxt.Draw(win, pixel.IM.Scaled(d.dialogueTxt.Orig, 1))

	if app.stage.showContinue {
		d.statusTxt.Color = colornames.Deepskyblue
		d.drawCenteredLine(win, d.statusTxt, center.Add(pixel.V(0.0, -200.0)), "click to continue", 1)
	}
}

func drawStory(win *pixelgl.Window, app *app, d *DrawContext) {
	center := win.Bounds().Center()
	run := app.story
	scene := run.Scene()

	d.titleTxt.Color = colornames.White
	d.drawCenteredLine(win, d.titleTxt, center.Add(pixel.V(0.0, 240.0)), scene.title, 1)

	d.dialogueTxt.Clear()
	d.dialogueTxt.Color = colornames.White
	d.dialogueTxt.Orig = center.Add(pixel.V(0.0, 170.0))
	for _, line := range wrapText(scene.body, dialogueWrapWidth) {
		d.dialogueTxt.Dot.X = d.dialogueTxt.Orig.X - d.dialogueTxt.BoundsOf(line).W()/2
		fmt.Fprintln(d.dialogueTxt, line)
	}
	d.dialogueTxt.Draw(win, pixel.IM.Scaled(d.dialogueTxt.Orig, 1))

	choices := run.Choices()
	d.centeredTxt.Clear()
	d.centeredTxt.Orig = center.Add(pixel.V(-180, -40))
	for i, ch := range choices {
		d.centeredTxt.Color = colornames.White
		if i == run.selection {
			d.centeredTxt.Color = colornames.Deepskyblue
			d.imd.Push(
				d.centeredTxt.Dot.Add(pixel.V(-8.0, (d.centeredTxt.LineHeight/2.0)-10)),
			)
			d.imd.Circle(2.0, 4.0)
		}
		fmt.Fprintf(d.centeredTxt, "[%s] %s\n", ch.key, ch.text)
	}
	d.centeredTxt.Draw(win, pixel.IM.Scaled(d.centeredTxt.Orig, 1))

	if run.notice != "" {
		d.statusTxt.Color = colornames.Gold
		d.drawCenteredLine(win, d.statusTxt, center.Add(pixel.V(0.0, -220.0)), run.notice, 1)
	}

	d.cornerTxt.Color = colornames.Grey
	d.cornerTxt.Clear()
	d.cornerTxt.Orig = pixel.V(win.Bounds().W()-140, 30)
	fmt.Fprintf(d.cornerTxt, "comfort %d/%d", run.progress.Comfort, comfortMax)
	d.cornerTxt.Draw(win, pixel.IM)
}
