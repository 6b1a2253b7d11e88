package view

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"campaign-manager/internal/core/domain"
)

// Step is a page of the ad group wizard.
type Step int

const (
	StepBasics Step = iota
	StepTargeting
	StepBidding
	StepCreative

	stepCount
)

var stepTitles = [stepCount]string{"Basic info", "Targeting", "Bidding", "Creative"}

func (s Step) String() string {
	if s < 0 || s >= stepCount {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepTitles[s]
}

// Field names, matching the JSON keys.
const (
	FieldName           = "name"
	FieldTargetAudience = "target_audience"
	FieldKeywords       = "keywords"
	FieldCPCBid         = "cpc_bid"
	FieldCPMBid         = "cpm_bid"
	FieldHeadline       = "ad_headline"
	FieldHeadline2      = "ad_headline_2"
	FieldHeadline3      = "ad_headline_3"
	FieldDescription    = "ad_description"
	FieldDescription2   = "ad_description_2"
	FieldFinalURL       = "final_url"
	FieldDisplayURL     = "display_url"
)

var stepFields = [stepCount][]string{
	StepBasics:    {FieldName},
	StepTargeting: {FieldTargetAudience, FieldKeywords},
	StepBidding:   {FieldCPCBid, FieldCPMBid},
	StepCreative: {
		FieldHeadline, FieldHeadline2, FieldHeadline3,
		FieldDescription, FieldDescription2,
		FieldFinalURL, FieldDisplayURL,
	},
}

// AdGroupWizard collects an ad group draft over four pages. Pages are a
// presentation detail: all of them feed one draft that is submitted once.
// It is safe for concurrent use; the UI edits it while a submit reads it.
type AdGroupWizard struct {
	mu   sync.Mutex
	step Step
	data domain.AdGroupFormData
}

// NewAdGroupWizard returns a wizard on the first page, pre-filled from
// prefill when it is not nil.
func NewAdGroupWizard(prefill *domain.AdGroup) *AdGroupWizard {
	w := &AdGroupWizard{}
	if prefill != nil {
		w.data = prefill.FormData()
	}
	return w
}

func (w *AdGroupWizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Steps returns the number of pages.
func (w *AdGroupWizard) Steps() int { return int(stepCount) }

func (w *AdGroupWizard) First() bool { return w.Step() == StepBasics }
func (w *AdGroupWizard) Last() bool  { return w.Step() == stepCount-1 }

// Next moves forward one page. It stays on the last page.
func (w *AdGroupWizard) Next() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step < stepCount-1 {
		w.step++
	}
}

// Prev moves back one page. It stays on the first page.
func (w *AdGroupWizard) Prev() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepBasics {
		w.step--
	}
}

// GoTo jumps to s. Out of range steps are ignored.
func (w *AdGroupWizard) GoTo(s Step) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if s >= 0 && s < stepCount {
		w.step = s
	}
}

// Fields returns the field names shown on the current page.
func (w *AdGroupWizard) Fields() []string {
	return stepFields[w.Step()]
}

// Data returns a copy of the draft as composed so far.
func (w *AdGroupWizard) Data() domain.AdGroupFormData {
	w.mu.Lock()
	defer w.mu.Unlock()
	d := w.data
	d.CPCBid = cloneBid(d.CPCBid)
	d.CPMBid = cloneBid(d.CPMBid)
	return d
}

// Hints returns advisory creative length warnings for the draft.
func (w *AdGroupWizard) Hints() []domain.ValidationError {
	return domain.CreativeLimits(w.Data())
}

// Field returns the text value of a field as it would be edited.
func (w *AdGroupWizard) Field(name string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	d := &w.data
	switch name {
	case FieldCPCBid:
		return formatBid(d.CPCBid)
	case FieldCPMBid:
		return formatBid(d.CPMBid)
	}
	if p := w.text(name); p != nil {
		return *p
	}
	return ""
}

// Set assigns a field from its text form. Bids accept an empty string for
// "no bid"; anything else must parse as a number.
func (w *AdGroupWizard) Set(name, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	d := &w.data
	switch name {
	case FieldCPCBid:
		return setBid(&d.CPCBid, name, value)
	case FieldCPMBid:
		return setBid(&d.CPMBid, name, value)
	}
	p := w.text(name)
	if p == nil {
		return fmt.Errorf("unknown field %q", name)
	}
	*p = value
	return nil
}

func (w *AdGroupWizard) text(name string) *string {
	d := &w.data
	switch name {
	case FieldName:
		return &d.Name
	case FieldTargetAudience:
		return &d.TargetAudience
	case FieldKeywords:
		return &d.Keywords
	case FieldHeadline:
		return &d.AdHeadline
	case FieldHeadline2:
		return &d.AdHeadline2
	case FieldHeadline3:
		return &d.AdHeadline3
	case FieldDescription:
		return &d.AdDescription
	case FieldDescription2:
		return &d.AdDescription2
	case FieldFinalURL:
		return &d.FinalURL
	case FieldDisplayURL:
		return &d.DisplayURL
	}
	return nil
}

func setBid(dst **float64, field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*dst = nil
		return nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return &domain.ValidationError{Field: field, Reason: "must be a number"}
	}
	*dst = &v
	return nil
}

func cloneBid(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func formatBid(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
