// Command entex-detect runs one-shot entity extraction from the shell.
// It needs no database; the embedded lexicon packs are always available.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"entex/internal/core/numeral"
	"entex/internal/core/phone"
	"entex/internal/core/temporal/clocktime"
	"entex/internal/core/temporal/dates"
)

func main() {
	var (
		entity     = flag.String("entity", "date", "entity type: date time number number-range phone")
		message    = flag.String("message", "", "text to extract from")
		structured = flag.String("structured", "", "structured value, takes precedence over message")
		fallback   = flag.String("fallback", "", "fallback value, scanned when the rest yields nothing")
		timezone   = flag.String("timezone", "UTC", "IANA timezone for temporal entities")
		botMsg     = flag.String("bot-message", "", "prior outbound message, used for century hints")
		pastRef    = flag.Bool("past", false, "bias ambiguous relative dates toward the past")
		minDigits  = flag.Int("min-digits", 0, "minimum integer digits for number entities")
		maxDigits  = flag.Int("max-digits", 0, "maximum integer digits for number entities")
		unitType   = flag.String("unit-type", "", "restrict number units: currency people weight")
		language   = flag.String("language", "en", "source language stamped on phone records")
	)
	flag.Parse()

	if *message == "" && *structured == "" && *fallback == "" {
		log.Fatal("one of -message, -structured or -fallback is required")
	}

	out, err := run(*entity, *message, *structured, *fallback, opts{
		timezone:  *timezone,
		botMsg:    *botMsg,
		pastRef:   *pastRef,
		minDigits: *minDigits,
		maxDigits: *maxDigits,
		unitType:  *unitType,
		language:  *language,
	})
	if err != nil {
		log.Fatalf("detect: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any{"data": out}); err != nil {
		log.Fatalf("encode: %v", err)
	}
}

type opts struct {
	timezone  string
	botMsg    string
	pastRef   bool
	minDigits int
	maxDigits int
	unitType  string
	language  string
}

func run(entity, message, structured, fallback string, o opts) (any, error) {
	switch entity {
	case "date":
		d, err := dates.New("date", dates.Options{
			Timezone:           o.timezone,
			PastDateReferenced: o.pastRef,
			BotMessage:         o.botMsg,
		})
		if err != nil {
			return nil, err
		}
		return d.Detect(message, structured, fallback)
	case "time":
		d, err := clocktime.New("time", clocktime.Options{Timezone: o.timezone})
		if err != nil {
			return nil, err
		}
		return d.Detect(message, structured, fallback)
	case "number":
		d, err := numeral.New("number_of_units", numeral.Options{
			MinDigits: o.minDigits,
			MaxDigits: o.maxDigits,
			UnitType:  o.unitType,
		})
		if err != nil {
			return nil, err
		}
		return d.Detect(message, structured, fallback)
	case "number-range":
		d, err := numeral.NewRange("number_range", numeral.Options{
			MinDigits: o.minDigits,
			MaxDigits: o.maxDigits,
			UnitType:  o.unitType,
		})
		if err != nil {
			return nil, err
		}
		return d.Detect(message, structured, fallback)
	case "phone":
		d, err := phone.New("phone_number", o.language)
		if err != nil {
			return nil, err
		}
		return d.Detect(message, structured, fallback)
	}
	return nil, fmt.Errorf("unknown entity type %q", entity)
}
