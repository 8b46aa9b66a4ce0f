package keepsake

// Status lines cycled by the typewriter on the main menu.
var statusMessages = []string{
	"happy birthday, raffi...",
	"loading cake.exe",
	"another year of bad jokes",
	"you are officially old now",
	"make a wish",
}

// birthdayCard is the card shown by "Birthday Card": a short fixed chain of
// portrait + line + cue, advanced one click at a time.
var birthdayCard = sceneChain{
	{
		image:    "images/card/doorway.png",
		dialogue: "Oh hey, you made it. Come in, come in.",
		sound:    "card/knock",
		next:     1,
	},
	{
		image:    "images/card/cake.png",
		dialogue: "We may have gone overboard with the candles.\nThe fire department has been notified.",
		sound:    "card/fanfare",
		next:     2,
	},
	{
		image:    "images/card/confetti.png",
		dialogue: "Happy birthday, you absolute legend.",
		sound:    "card/cheer",
		next:     sceneEnd,
	},
}
