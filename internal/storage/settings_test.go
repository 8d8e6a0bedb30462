package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSettingsRoundtrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	type knobs struct {
		High float64 `json:"high"`
	}

	var got knobs
	found, err := db.GetSetting(ctx, "scoring", &got)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, db.SetSetting(ctx, "scoring", knobs{High: 75}))
	found, err = db.GetSetting(ctx, "scoring", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 75.0, got.High)

	// Replace wholesale.
	require.NoError(t, db.SetSetting(ctx, "scoring", knobs{High: 80}))
	_, err = db.GetSetting(ctx, "scoring", &got)
	require.NoError(t, err)
	require.Equal(t, 80.0, got.High)
}

func TestBlockedCountiesLowercasedSet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.ReplaceBlockedCounties(ctx, []string{" Kerry ", "DONEGAL", "", "Kerry"}))

	blocked, err := db.ListBlockedCounties(ctx)
	require.NoError(t, err)
	require.Len(t, blocked, 2)
	require.True(t, blocked["kerry"])
	require.True(t, blocked["donegal"])

	require.NoError(t, db.ReplaceBlockedCounties(ctx, nil))
	blocked, err = db.ListBlockedCounties(ctx)
	require.NoError(t, err)
	require.Empty(t, blocked)
}

func TestSeededKeywords(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	byCat, err := db.KeywordsByCategory(ctx)
	require.NoError(t, err)
	require.Contains(t, byCat, "Skills")
	require.Contains(t, byCat, "Tools")
	require.Contains(t, byCat, "Employers (call centres)")
	require.Contains(t, byCat["Skills"], "Customer Service")
}

func TestAddAndDeleteKeyword(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	k := &Keyword{Category: "Skills", Term: "de-escalation", Tier: 9}
	require.NoError(t, db.AddKeyword(ctx, k))
	require.Equal(t, 2, k.Tier) // out-of-range tier falls back to the default

	// Duplicate (category, term) pairs are ignored.
	require.NoError(t, db.AddKeyword(ctx, &Keyword{Category: "Skills", Term: "de-escalation"}))

	kws, err := db.ListKeywords(ctx)
	require.NoError(t, err)
	var added *Keyword
	n := 0
	for _, kw := range kws {
		if kw.Term == "de-escalation" {
			added = kw
			n++
		}
	}
	require.Equal(t, 1, n)
	require.NotNil(t, added)

	require.NoError(t, db.DeleteKeyword(ctx, added.ID))
	byCat, err := db.KeywordsByCategory(ctx)
	require.NoError(t, err)
	require.NotContains(t, byCat["Skills"], "de-escalation")
}

func TestCampaignsUpsertByName(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveCampaign(ctx, &Campaign{Name: "Spring Drive", HoursNotes: "weekends"}))
	require.NoError(t, db.SaveCampaign(ctx, &Campaign{Name: "Spring Drive", HoursNotes: "weekdays", NeedWeekdays: true}))

	campaigns, err := db.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	require.Equal(t, "weekdays", campaigns[0].HoursNotes)
	require.True(t, campaigns[0].NeedWeekdays)
}

func TestDrives(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveCampaign(ctx, &Campaign{Name: "Spring Drive"}))
	campaigns, err := db.ListCampaigns(ctx)
	require.NoError(t, err)

	_, err = db.AddDrive(ctx, &Drive{
		CampaignID: campaigns[0].ID, StartDate: "2026-03-01", CutoffDate: "2026-03-20",
		FTETarget: 12, IsActive: true,
	})
	require.NoError(t, err)

	drives, err := db.ListDrives(ctx, campaigns[0].ID)
	require.NoError(t, err)
	require.Len(t, drives, 1)
	require.Equal(t, "Spring Drive", drives[0].Campaign)

	none, err := db.ListDrives(ctx, campaigns[0].ID+1)
	require.NoError(t, err)
	require.Empty(t, none)
}
