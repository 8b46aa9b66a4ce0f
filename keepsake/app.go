package keepsake

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
)

func windowedBounds() pixel.Rect {
	return pixel.R(0, 0, 1024, 768)
}

type menu struct {
	selection int
	options   []string
}

func NewMainMenu() menu {
	return menu{
		selection: 0,
		options: []string{
			"Birthday Card",
			"Story: Cafe Overture",
			"Options",
			"Quit",
		},
	}
}

func NewOptionsMenu() menu {
	return menu{
		selection: 0,
		options: []string{
			"Fullscreen (1080p)",
			"Windowed (1024x768)",
			"Music Off",
			"Music On",
			"Back",
		},
	}
}

type app struct {
	state  string
	config Config
	menu   menu

	status *typewriter
	stage  *cardStage
	card   *scenePlayer
	story  *storyRun

	music       bool
	currentSong string

	lastFrame          time.Time
	lastMenuChoiceTime time.Time
	totalTime          float64
}

func NewApp(config Config) *app {
	app := new(app)
	app.state = "start_screen"
	app.config = config
	app.menu = NewMainMenu()
	app.status = NewTypewriter(statusMessages)
	app.music = config.Music
	app.lastFrame = time.Now()
	app.lastMenuChoiceTime = time.Now()
	app.totalTime = 0.0
	return app
}

func (app *app) playSong(name string) {
	app.currentSong = name
	if app.music {
		PlaySong(name)
	}
}

func (app *app) enterMainMenu(now time.Time) {
	app.state = "main_menu"
	app.menu = NewMainMenu()
	// The status line starts once the start screen is done and keeps its
	// place across card and story visits.
	app.status.Start(now)
	if app.currentSong != "menu" {
		app.playSong("menu")
	}
}

func (app *app) startCard() {
	app.stage = NewCardStage()
	card, err := NewScenePlayer(birthdayCard, app.stage)
	if err != nil {
		// Content bug; refuse to show a broken card.
		fmt.Printf("[Card] %v\n", err)
		return
	}
	app.card = card
	app.card.Start()
	app.state = "card"
	app.playSong("card")
}

func (app *app) startStory() {
	if app.story == nil || app.story.Done() {
		progress := NewStoryProgress()
		if data, ok := ReadLocalData(); ok {
			progress = data.Story
		}
		story, err := NewStoryRun(progress)
		if err != nil {
			fmt.Printf("[Story] %v\n", err)
			return
		}
		app.story = story
	}
	app.state = "story"
	app.playSong("story")
}

func UpdateApp(win *pixelgl.Window, app *app, ui *uiContext) {
	if app.state == "quitting" {
		win.SetClosed(true)
		return
	}

	now := time.Now()
	dt := now.Sub(app.lastFrame).Seconds()
	app.totalTime += dt
	app.lastFrame = now

	uiGamePadDir := uiThumbstickVector(win, ui.currJoystick, pixelgl.AxisLeftX, pixelgl.AxisLeftY)
	confirmed := uiConfirm(win, ui.currJoystick)
	cancelled := uiCancel(win, ui.currJoystick)

	switch app.state {
	case "start_screen":
		if app.totalTime > 6.0 || confirmed || cancelled {
			app.enterMainMenu(now)
		}

	case "main_menu":
		app.status.Update(now)

		menuChange := uiChangeSelection(win, uiGamePadDir, app.lastFrame, app.lastMenuChoiceTime)
		if menuChange != 0 {
			PlaySound("menu/step")
			app.menu.selection = (app.menu.selection + menuChange) % len(app.menu.options)
			if app.menu.selection < 0 {
				app.menu.selection += len(app.menu.options)
			}
			app.lastMenuChoiceTime = now
		}

		if confirmed {
			PlaySound("menu/confirm")
			switch app.menu.options[app.menu.selection] {
			case "Birthday Card":
				app.startCard()

			case "Story: Cafe Overture":
				app.startStory()

			case "Options":
				app.menu = NewOptionsMenu()

			case "Fullscreen (1080p)":
				win.SetMonitor(pixelgl.PrimaryMonitor())

			case "Windowed (1024x768)":
				win.SetMonitor(nil)
				win.SetBounds(windowedBounds())

			case "Music On":
				app.music = true
				if app.currentSong != "" {
					PlaySong(app.currentSong)
				}

			case "Music Off":
				app.music = false
				StopMusic()

			case "Back":
				app.menu = NewMainMenu()

			case "Quit":
				app.state = "quitting"
			}
		}

		if cancelled {
			app.menu = NewMainMenu()
		}

	case "card":
		if confirmed {
			app.card.Advance()
		}
		if cancelled {
			app.enterMainMenu(now)
		}

	case "story":
		run := app.story

		if key := uiChoiceKey(win); key != "" {
			if run.ChooseKey(key) {
				PlaySound("menu/confirm")
			}
		} else {
			menuChange := uiChangeSelection(win, uiGamePadDir, app.lastFrame, app.lastMenuChoiceTime)
			if menuChange != 0 {
				PlaySound("menu/step")
				run.MoveSelection(menuChange)
				app.lastMenuChoiceTime = now
			}
			if confirmed {
				PlaySound("menu/confirm")
				run.ChooseSelected()
			}
		}

		if run.Done() || cancelled {
			app.enterMainMenu(now)
		}
	}

	if app.music && app.currentSong != "" {
		updateMusic(app.currentSong)
	}
}
