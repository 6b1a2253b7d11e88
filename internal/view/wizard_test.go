package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"campaign-manager/internal/core/domain"
)

func TestWizardNavigation(t *testing.T) {
	w := NewAdGroupWizard(nil)
	assert.True(t, w.First())
	assert.Equal(t, 4, w.Steps())

	w.Prev()
	assert.Equal(t, StepBasics, w.Step())
	for range 10 {
		w.Next()
	}
	assert.True(t, w.Last())
	assert.Equal(t, "Creative", w.Step().String())

	w.GoTo(StepTargeting)
	assert.Equal(t, []string{FieldTargetAudience, FieldKeywords}, w.Fields())
	w.GoTo(Step(42))
	assert.Equal(t, StepTargeting, w.Step())
}

func TestWizardKeepsDataAcrossSteps(t *testing.T) {
	w := NewAdGroupWizard(nil)
	require.NoError(t, w.Set(FieldName, "Brand"))
	w.GoTo(StepCreative)
	require.NoError(t, w.Set(FieldHeadline, "This headline is clearly far too long"))
	w.GoTo(StepBasics)

	d := w.Data()
	assert.Equal(t, "Brand", d.Name)
	assert.Equal(t, "This headline is clearly far too long", d.AdHeadline)

	hints := w.Hints()
	require.Len(t, hints, 1)
	assert.Equal(t, FieldHeadline, hints[0].Field)
}

func TestWizardBids(t *testing.T) {
	cpm := 4.0
	w := NewAdGroupWizard(&domain.AdGroup{Name: "x", Bidding: domain.Bidding{CPMBid: &cpm}})
	assert.Equal(t, "4", w.Field(FieldCPMBid))
	assert.Equal(t, "", w.Field(FieldCPCBid))

	var verr *domain.ValidationError
	require.ErrorAs(t, w.Set(FieldCPCBid, "abc"), &verr)
	assert.Equal(t, FieldCPCBid, verr.Field)

	require.NoError(t, w.Set(FieldCPMBid, " "))
	assert.Nil(t, w.Data().CPMBid)
	assert.Error(t, w.Set("bogus", "1"))
}

func TestActions(t *testing.T) {
	assert.Equal(t, []Action{{Label: "Publish", Verb: domain.VerbPublish}}, CampaignActions(domain.CampaignDraft))
	assert.Equal(t, []Action{{Label: "Disable", Verb: domain.VerbPause}}, CampaignActions(domain.CampaignPublished))
	assert.Empty(t, CampaignActions(domain.CampaignPaused))

	assert.Equal(t, "Enable", AdGroupActions(domain.AdGroupPaused)[0].Label)
	assert.Empty(t, AdGroupActions(domain.AdGroupRemoved))
	assert.Equal(t, []string{"Pause", "Delete"}, Labels(AdGroupActions(domain.AdGroupEnabled)))
}

// TestWizardConcurrentEdits edits the wizard while drafts are read, the way
// the terminal UI does during a submit. Run with -race.
func TestWizardConcurrentEdits(t *testing.T) {
	w := NewAdGroupWizard(nil)
	var g errgroup.Group
	g.Go(func() error {
		for i := 0; i < 200; i++ {
			if err := w.Set(FieldCPCBid, fmt.Sprint(i)); err != nil {
				return err
			}
			if err := w.Set(FieldName, fmt.Sprint("Brand ", i)); err != nil {
				return err
			}
			w.Next()
		}
		return nil
	})
	g.Go(func() error {
		for i := 0; i < 200; i++ {
			d := w.Data()
			if d.CPCBid != nil {
				*d.CPCBid = -1
			}
			_ = w.Fields()
		}
		return nil
	})
	require.NoError(t, g.Wait())

	d := w.Data()
	require.NotNil(t, d.CPCBid)
	assert.Equal(t, 199.0, *d.CPCBid)
	assert.Equal(t, "Brand 199", d.Name)
	assert.True(t, w.Last())
}
