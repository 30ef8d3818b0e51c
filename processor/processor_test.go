package processor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/aifr/kb"
	"github.com/c360studio/aifr/report"
)

// fakeResolver resolves from a fixed slug table.
type fakeResolver struct {
	systems map[string]report.AISystem
}

func (f *fakeResolver) ResolveSystem(slug string) (report.AISystem, error) {
	sys, ok := f.systems[slug]
	if !ok {
		return report.AISystem{}, kb.ErrNotFound
	}
	return sys, nil
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{systems: map[string]report.AISystem{
		"claude-sonnet-4": {
			ID:          "https://aifr.org/systems/claude-sonnet-4",
			Name:        "Claude Sonnet 4",
			Version:     "4.0",
			Slug:        "claude-sonnet-4",
			DisplayName: "Claude Sonnet 4 (Anthropic)",
			SystemType:  report.SystemKnown,
		},
		"deepseek-r1": {
			ID:          "https://aifr.org/systems/deepseek-r1",
			Name:        "DeepSeek R1",
			Version:     "1.0",
			Slug:        "deepseek-r1",
			DisplayName: "DeepSeek R1 (DeepSeek)",
			SystemType:  report.SystemKnown,
		},
	}}
}

func fixedProcessor(resolver SystemResolver) *Processor {
	p := New(resolver)
	p.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)
	}
	p.newID = func() string { return "test-report-id" }
	return p
}

func sampleRaw() *report.RawAIFlawReport {
	return &report.RawAIFlawReport{
		AISystems: []string{"claude-sonnet-4", "deepseek-r1"},
		AISystemsUnknown: []report.UnknownSystem{
			{Description: "A chatbot embedded in a banking app"},
		},
		FlawDescription: "Model reveals other users' session data on crafted input.",
		FlawSeverity:    report.SeverityMedium,
	}
}

func TestProcess_SampleReport(t *testing.T) {
	p := fixedProcessor(newFakeResolver())

	processed, err := p.Process(sampleRaw())
	require.NoError(t, err)

	require.Len(t, processed.AISystems, 3)
	assert.Equal(t, report.SystemKnown, processed.AISystems[0].SystemType)
	assert.Equal(t, report.SystemKnown, processed.AISystems[1].SystemType)
	assert.Equal(t, report.SystemUnknown, processed.AISystems[2].SystemType)

	assert.Equal(t, "claude-sonnet-4", processed.AISystems[0].Slug)
	assert.Equal(t, "deepseek-r1", processed.AISystems[1].Slug)

	assert.Equal(t, "test-report-id", processed.ReportID)
	assert.Equal(t, time.UTC, processed.CreatedAt.Location())
	assert.Equal(t, "Model reveals other users' session data on crafted input.", processed.FlawDescription)
	assert.Equal(t, report.SeverityMedium, processed.FlawSeverity)
}

func TestProcess_EntryCountInvariant(t *testing.T) {
	p := fixedProcessor(newFakeResolver())

	cases := []struct {
		name     string
		known    []string
		unknowns int
	}{
		{"known only", []string{"claude-sonnet-4"}, 0},
		{"unknown only", nil, 2},
		{"mixed", []string{"deepseek-r1", "claude-sonnet-4"}, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := &report.RawAIFlawReport{
				AISystems:       tc.known,
				FlawDescription: "A long enough description of the flaw.",
				FlawSeverity:    report.SeverityLow,
			}
			for i := 0; i < tc.unknowns; i++ {
				raw.AISystemsUnknown = append(raw.AISystemsUnknown,
					report.UnknownSystem{Description: "some undescribed system"})
			}

			processed, err := p.Process(raw)
			require.NoError(t, err)
			assert.Len(t, processed.AISystems, len(tc.known)+tc.unknowns)
		})
	}
}

func TestProcess_KnownPrecedeUnknown_PreservingOrder(t *testing.T) {
	p := fixedProcessor(newFakeResolver())

	raw := &report.RawAIFlawReport{
		AISystems: []string{"deepseek-r1", "claude-sonnet-4"},
		AISystemsUnknown: []report.UnknownSystem{
			{Description: "first unknown system"},
			{Description: "second unknown system"},
		},
		FlawDescription: "Ordering must match the raw submission.",
		FlawSeverity:    report.SeverityHigh,
	}

	processed, err := p.Process(raw)
	require.NoError(t, err)
	require.Len(t, processed.AISystems, 4)

	// Known group first, in input order.
	assert.Equal(t, "deepseek-r1", processed.AISystems[0].Slug)
	assert.Equal(t, "claude-sonnet-4", processed.AISystems[1].Slug)

	// Unknown group after, in input order.
	assert.Equal(t, "first unknown system", processed.AISystems[2].Description)
	assert.Equal(t, "second unknown system", processed.AISystems[3].Description)
}

func TestProcess_UnknownIdentityShape(t *testing.T) {
	p := fixedProcessor(newFakeResolver())

	raw := &report.RawAIFlawReport{
		AISystemsUnknown: []report.UnknownSystem{
			{Description: "a voice assistant of unknown make"},
		},
		FlawDescription: "Assistant executes commands without confirmation.",
		FlawSeverity:    report.SeverityCritical,
	}

	processed, err := p.Process(raw)
	require.NoError(t, err)
	require.Len(t, processed.AISystems, 1)

	unknown := processed.AISystems[0]
	assert.Equal(t, "https://aifr.org/reports/test-report-id/unknown-system-1", unknown.ID)
	assert.Equal(t, UnknownSystemName, unknown.Name)
	assert.Equal(t, UnknownSystemName, unknown.DisplayName)
	assert.Empty(t, unknown.Slug)
	assert.Empty(t, unknown.Version)
	assert.Equal(t, report.SystemUnknown, unknown.SystemType)
	assert.Equal(t, "a voice assistant of unknown make", unknown.Description)
}

func TestProcess_UnknownIdentifiersUnique(t *testing.T) {
	p := fixedProcessor(newFakeResolver())

	raw := &report.RawAIFlawReport{
		AISystemsUnknown: []report.UnknownSystem{
			{Description: "identical description"},
			{Description: "identical description"},
			{Description: "identical description"},
		},
		FlawDescription: "Two identical unknowns must still get distinct ids.",
		FlawSeverity:    report.SeverityLow,
	}

	processed, err := p.Process(raw)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, sys := range processed.AISystems {
		assert.False(t, seen[sys.ID], "duplicate synthesized id %s", sys.ID)
		seen[sys.ID] = true
	}
}

func TestProcess_UnresolvedSlugFailsRun(t *testing.T) {
	p := fixedProcessor(newFakeResolver())

	raw := sampleRaw()
	raw.AISystems = append(raw.AISystems, "not-in-kb")

	processed, err := p.Process(raw)
	assert.Nil(t, processed, "no partial report on failure")

	var uerr *UnresolvedSystemError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "not-in-kb", uerr.Slug)
	assert.ErrorIs(t, err, kb.ErrNotFound)
}

func TestProcess_RejectsInvalidRaw(t *testing.T) {
	p := fixedProcessor(newFakeResolver())

	raw := &report.RawAIFlawReport{
		FlawDescription: "No systems referenced at all in this report.",
		FlawSeverity:    report.SeverityLow,
	}

	_, err := p.Process(raw)
	var verr *report.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestProcess_UniqueReportIDs(t *testing.T) {
	p := New(newFakeResolver())

	a, err := p.Process(sampleRaw())
	require.NoError(t, err)
	b, err := p.Process(sampleRaw())
	require.NoError(t, err)

	assert.NotEqual(t, a.ReportID, b.ReportID)
}
