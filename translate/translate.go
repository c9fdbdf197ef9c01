// Package translate localizes the user-visible messages of the VM.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	SetLanguage()
}

// SetLanguage selects the message language from the given BCP 47 tags.
// With no tags, the system locales are used, falling back to en-US.
func SetLanguage(tags ...string) {
	if len(tags) == 0 {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Printf("regvm: locale: %v", err)
		}
		tags = locales
	}

	if len(tags) == 0 {
		tags = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(tags...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
