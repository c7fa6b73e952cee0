package game

import (
	"log/slog"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Notice message keys.
const (
	msgAwayHours   = "Welcome back! You were away for %d hours."
	msgAwayMinutes = "Welcome back! You were away for %d minutes."
	msgCritical    = "%s needs attention!"
	msgAdopted     = "%s has joined your family!"
	msgLevelUp     = "%s reached level %d!"
	msgAchievement = "Achievement unlocked: %s! +%d coins"
	msgUnlockDog   = "New dog unlocked: %s!"
	msgUnlockToy   = "New toy unlocked: %s!"
	msgUnlockFood  = "New food unlocked: %s!"
	msgSaved       = "Game saved to slot %d!"
	msgNoSave      = "No saved data in this slot."
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	set := func(key string, msg ...catalog.Message) {
		if err := b.Set(language.English, key, msg...); err != nil {
			slog.Error("failed to register notice", "key", key, "error", err)
		}
	}
	set(msgAwayHours, plural.Selectf(1, "%d",
		"one", "Welcome back! You were away for an hour.",
		"other", msgAwayHours))
	set(msgAwayMinutes, plural.Selectf(1, "%d",
		"one", "Welcome back! You were away for a minute.",
		"other", msgAwayMinutes))
	set(msgAchievement, plural.Selectf(2, "%d",
		"one", "Achievement unlocked: %s! +%d coin",
		"other", msgAchievement))
	return b
}

func newPrinter() *message.Printer {
	return message.NewPrinter(language.English, message.Catalog(newCatalog()))
}
