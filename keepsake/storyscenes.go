package keepsake

import "fmt"

// buildStoryScenes returns the scene table for the cafe evening story. The
// table is fixed content; only StoryProgress changes at runtime.
func buildStoryScenes() map[string]storyScene {
	scenes := map[string]storyScene{}

	scenes["intro"] = storyScene{
		key:   "intro",
		title: "Cafe Overture",
		body: "A rainy evening hums outside. Inside the cafe, warm light and soft jazz. " +
			"A friend waves you over to a corner table. Tonight's plan: talk, vibe, and keep things chill.",
		choices: []storyChoice{
			{key: "a", text: "Sit and ask about their day.", next: "talk", effect: adjustComfort(+1)},
			{key: "b", text: "Crack a playful joke.", next: "joke"},
			{key: "c", text: "Grab tea for both of you first.", next: "tea", effect: adjustComfort(+1)},
		},
	}

	scenes["talk"] = storyScene{
		key:   "talk",
		title: "Small Talk, Big Smiles",
		body: "They appreciate the gentle start. You trade stories about music and late-night " +
			"coding experiments. They mention they love considerate people.",
		choices: []storyChoice{
			{key: "a", text: "Suggest a low-key walk after tea.", next: "walk",
				effect: adjustComfort(+1), requires: requiresComfortAtLeast(6)},
			{key: "b", text: "Keep chatting about playlists.", next: "playlist"},
			{key: "m", text: "Open the menu.", next: "menu"},
		},
	}

	scenes["joke"] = storyScene{
		key:   "joke",
		title: "A Light Laugh",
		body: "Your joke lands, sort of. They smile, then glance at the window. " +
			"Maybe slow and thoughtful would work better.",
		choices: []storyChoice{
			{key: "a", text: "Apologize lightly and pivot to music talk.", next: "playlist", effect: adjustComfort(+1)},
			{key: "m", text: "Open the menu.", next: "menu"},
		},
	}

	scenes["tea"] = storyScene{
		key:   "tea",
		title: "Warm Cups",
		body: "You return with tea. The steam curls between you like a ribbon. " +
			"They thank you, visibly relaxing.",
		choices: []storyChoice{
			{key: "a", text: "Ask their favorite artists.", next: "playlist", effect: adjustComfort(+1)},
			{key: "m", text: "Open the menu.", next: "menu"},
		},
	}

	scenes["playlist"] = storyScene{
		key:   "playlist",
		title: "Soft Soundtrack",
		body: "You trade recs. The vibe is gentle, respectful, and curious. " +
			"They seem comfortable setting the pace.",
		choices: []storyChoice{
			{key: "a", text: "Offer a hand for a brief dance by the window.", next: "dance",
				effect: adjustComfort(+1), requires: requiresComfortAtLeast(7)},
			{key: "b", text: "Keep it cozy; plan a future vinyl night.", next: "future", effect: setFlag("vinyl_night")},
			{key: "m", text: "Open the menu.", next: "menu"},
		},
	}

	scenes["walk"] = storyScene{
		key:   "walk",
		title: "Rainlight Walk",
		body: "Umbrellas up. Streetlights glow on the wet pavement. " +
			"You match their pace and keep conversation easy.",
		choices: []storyChoice{
			{key: "a", text: "End the night with a polite goodbye.", next: "ending_gentle", effect: adjustComfort(+1)},
			{key: "b", text: "Ask if they'd like to meet again soon.", next: "future", effect: setFlag("meet_again")},
		},
	}

	scenes["dance"] = storyScene{
		key:   "dance",
		title: "Window Waltz",
		body: "A few slow steps near the window. Nothing more than a smile and relaxed " +
			"shoulders. When they squeeze your hand back, you both laugh.",
		choices: []storyChoice{
			{key: "a", text: "Thank them for the moment and return to the table.", next: "talk", effect: adjustComfort(+1)},
			{key: "b", text: "Call it a night on a high note.", next: "ending_gentle", effect: adjustComfort(+1)},
		},
	}

	scenes["future"] = storyScene{
		key:   "future",
		title: "Plans, Not Pressure",
		body: "You trade numbers and sketch a future plan: vinyl night, maybe a tiny " +
			"local show. Everything stays respectful and unrushed.",
		choices: []storyChoice{
			{key: "a", text: "Wrap up the evening.", next: "ending_gentle"},
			{key: "m", text: "Open the menu.", next: "menu"},
		},
	}

	scenes["menu"] = storyScene{
		key:   "menu",
		title: "Menu",
		body:  "Anything you need, while the jazz plays on.",
		choices: []storyChoice{
			{key: "s", text: "Save game.", next: storyStay, effect: saveStory},
			{key: "l", text: "Load game.", next: storyStay, effect: loadStory},
			{key: "c", text: "Check comfort meter.", next: storyStay, effect: checkComfort},
			{key: "b", text: "Back.", next: storyBack},
		},
	}

	scenes["ending_gentle"] = storyScene{
		key:   "ending_gentle",
		title: "A Gentle Ending",
		body: "You end the night kindly, leaving space for tomorrow. " +
			"Respect, warmth, and good timing.",
		choices: []storyChoice{
			{key: "r", text: "Replay from start.", next: storyStay, effect: restartStory},
			{key: "q", text: "Quit.", next: storyQuit},
		},
	}

	return scenes
}

func saveStory(run *storyRun) {
	data := LocalData{Story: run.progress}
	if err := data.WriteToFile(); err != nil {
		run.notice = "Could not save."
		return
	}
	run.notice = "Saved."
}

func loadStory(run *storyRun) {
	data, ok := ReadLocalData()
	if !ok {
		run.notice = "No save found."
		return
	}
	if _, exists := run.scenes[data.Story.SceneKey]; !exists {
		run.notice = "Save is from another story."
		return
	}
	run.progress = data.Story
	run.history = nil
	run.notice = "Loaded."
}

func checkComfort(run *storyRun) {
	run.notice = fmt.Sprintf("Comfort: %d/%d", run.progress.Comfort, comfortMax)
}

func restartStory(run *storyRun) {
	run.progress = NewStoryProgress()
	run.history = nil
}
