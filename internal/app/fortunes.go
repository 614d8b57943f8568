package app

import "math/rand"

// fortunes are shown on an empty page when no custom start message is set.
var fortunes = []string{
	"You've got this. Just keep writing.",
	"Your inner critic has no power here.",
	"The journey of a thousand pages begins with a single keystroke.",
	"Trust your instincts, and watch your story unfold.",
	"The first draft is for you. Perfection can wait.",
	"Every word brings you one step closer to your goal.",
	"Don't look back. The magic is in moving forward.",
	"Your story is waiting to be told. Don't hold back!",
	"Embrace the blank page, and let the words flow.",
	"Today, you write without fear.",
}

func randomFortune() string {
	return fortunes[rand.Intn(len(fortunes))]
}
