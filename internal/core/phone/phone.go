// Package phone extracts phone numbers from free text. International
// numbers keep their country code; separators (spaces, dots, dashes,
// parentheses) are tolerated and stripped, so the reported value is
// digits only, with a leading + when the text carried one
package phone

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"entex/internal/core/detect"
	"entex/internal/core/normalize"
)

// Record is the resolved value of one detected phone number, stamped
// with the request language the detector was built for
type Record struct {
	Value    string `json:"value"`
	Language string `json:"language"`
}

// Detection aliases the generic wire shape for phone records
type Detection = detect.Detection[Record]

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

var (
	// +91 98765 43210, +1 (555) 010-9999
	reInternational = regexp.MustCompile(
		`(\+\d{1,3}[\s.-]?(?:\(\d{1,4}\)[\s.-]?)?\d(?:[\s.-]?\d){5,12})`)
	// 022-40404040, (555) 010 9999, 9876543210
	reLocal = regexp.MustCompile(
		`((?:\(\d{2,4}\)[\s.-]?)?\b\d(?:[\s.-]?\d){5,12})\b`)
)

// Detector recognizes phone numbers for one entity and request language
type Detector struct {
	entity   string
	tag      string
	language string
	norm     *normalize.Normalizer
	pipeline []detect.Sub[Record]
}

type scan = detect.Scan[Record]

// New builds a phone detector. language is the request's source language
// tag and is carried through for reporting only
func New(entity, language string) (*Detector, error) {
	if entity == "" {
		return nil, fmt.Errorf("phone: empty entity name")
	}
	if language == "" {
		language = "en"
	}
	d := &Detector{
		entity:   entity,
		tag:      "__" + entity + "__",
		language: language,
		norm:     normalize.New(),
	}
	d.pipeline = []detect.Sub[Record]{
		d.international,
		d.local,
	}
	return d, nil
}

// Entity returns the entity name this detector reports under
func (d *Detector) Entity() string { return d.entity }

// Language returns the request language the detector was built for
func (d *Detector) Language() string { return d.language }

// Detect runs phone extraction over one request. structured, when present,
// replaces the message as the scanned text; fallback is scanned only when
// the primary text yields nothing
func (d *Detector) Detect(message, structured, fallback string) ([]Detection, error) {
	if message == "" && structured == "" && fallback == "" {
		return nil, fmt.Errorf("phone: no input: message, structured and fallback values all empty")
	}
	text, source := message, detect.SourceMessage
	if structured != "" {
		text, source = structured, detect.SourceStructured
	}
	out := d.detectOne(text, source)
	if len(out) == 0 && fallback != "" {
		out = d.detectOne(fallback, detect.SourceFallback)
	}
	return out, nil
}

// DetectBulk runs Detect over a batch of messages
func (d *Detector) DetectBulk(messages []string) ([][]Detection, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("phone: no input: empty message batch")
	}
	out := make([][]Detection, len(messages))
	for i, msg := range messages {
		out[i] = d.detectOne(msg, detect.SourceMessage)
	}
	return out, nil
}

func (d *Detector) detectOne(text string, source detect.Source) []Detection {
	s := detect.NewScan[Record](d.norm.Normalize(text), time.Time{})
	s.Run(d.tag, d.pipeline)
	return s.Detections(source)
}

func (d *Detector) international(s *scan) {
	for _, m := range reInternational.FindAllStringSubmatch(s.Unclaimed, -1) {
		v := digits(m[1])
		if !plausible(v) {
			continue
		}
		s.Emit(Record{Value: "+" + v, Language: d.language}, m[1])
	}
}

func (d *Detector) local(s *scan) {
	for _, m := range reLocal.FindAllStringSubmatch(s.Unclaimed, -1) {
		v := digits(m[1])
		if !plausible(v) {
			continue
		}
		s.Emit(Record{Value: v, Language: d.language}, m[1])
	}
}

// digits strips everything but the decimal digits
func digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func plausible(v string) bool {
	return len(v) >= minPhoneDigits && len(v) <= maxPhoneDigits
}
