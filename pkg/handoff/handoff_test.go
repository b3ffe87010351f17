package handoff

import (
	"net/url"
	"strings"
	"testing"

	"github.com/autoflowai/autoflow/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_FreeText(t *testing.T) {
	t.Parallel()

	route := Encode(FromQuery("Summarize tickets"))

	assert.Equal(t, "/workflow-canvas/new?query=Summarize+tickets", route)
}

func TestEncode_TemplateForm(t *testing.T) {
	t.Parallel()

	form := &models.ParameterForm{
		WorkflowName:   "Test Flow",
		Description:    "",
		TriggerType:    models.TriggerTypeManual,
		TargetAudience: "",
	}

	route := Encode(FromForm("2", form))

	require.True(t, strings.HasPrefix(route, "/workflow-canvas/2?"))

	parsed, err := url.Parse(route)
	require.NoError(t, err)

	params := parsed.Query()
	assert.Equal(t, "Test Flow", params.Get("name"))
	assert.Equal(t, "", params.Get("description"))
	assert.Equal(t, "manual", params.Get("trigger"))
	assert.Equal(t, "", params.Get("audience"))
}

func TestEncode_PercentEncodesValues(t *testing.T) {
	t.Parallel()

	form := &models.ParameterForm{
		WorkflowName: "A&B workflow",
		TriggerType:  models.TriggerTypeWebhook,
	}

	route := Encode(FromForm("4", form))

	assert.NotContains(t, route, "A&B")

	parsed, err := url.Parse(route)
	require.NoError(t, err)
	assert.Equal(t, "A&B workflow", parsed.Query().Get("name"))
}

func TestDecode_FreeText(t *testing.T) {
	t.Parallel()

	params := url.Values{}
	params.Set("query", "Summarize tickets")

	payload, err := Decode("new", params)
	require.NoError(t, err)
	require.NotNil(t, payload)

	assert.Equal(t, KindQuery, payload.Kind)
	assert.Equal(t, "Summarize tickets", payload.Query)
	assert.Equal(t, "new", payload.TemplateID)
}

func TestDecode_TemplateForm(t *testing.T) {
	t.Parallel()

	params := url.Values{}
	params.Set("name", "Test Flow")
	params.Set("description", "")
	params.Set("trigger", "schedule")
	params.Set("audience", "Tech enthusiasts")

	payload, err := Decode("2", params)
	require.NoError(t, err)
	require.NotNil(t, payload)

	assert.Equal(t, KindTemplate, payload.Kind)
	assert.Equal(t, "2", payload.TemplateID)
	assert.Equal(t, "Test Flow", payload.Name)
	assert.Equal(t, models.TriggerTypeSchedule, payload.Trigger)
	assert.Equal(t, "Tech enthusiasts", payload.Audience)
}

func TestDecode_NoPayloadYieldsNil(t *testing.T) {
	t.Parallel()

	payload, err := Decode("new", url.Values{})
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestDecode_BlankQueryYieldsNil(t *testing.T) {
	t.Parallel()

	params := url.Values{}
	params.Set("query", "   ")

	payload, err := Decode("new", params)
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestDecode_InvalidTriggerRejected(t *testing.T) {
	t.Parallel()

	params := url.Values{}
	params.Set("name", "Flow")
	params.Set("trigger", "cron")

	payload, err := Decode("2", params)
	require.ErrorIs(t, err, ErrInvalidTrigger)
	assert.Nil(t, payload)
}

func TestDecode_MissingTriggerDefaultsToManual(t *testing.T) {
	t.Parallel()

	params := url.Values{}
	params.Set("name", "Flow")

	payload, err := Decode("2", params)
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, models.TriggerTypeManual, payload.Trigger)
}

func TestDecode_IsIdempotent(t *testing.T) {
	t.Parallel()

	params := url.Values{}
	params.Set("query", "Build a lead pipeline")

	first, err := Decode("new", params)
	require.NoError(t, err)

	second, err := Decode("new", params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	form := &models.ParameterForm{
		WorkflowName:   "Quarterly Report Flow",
		Description:    "Collect & summarize",
		TriggerType:    models.TriggerTypeEvent,
		TargetAudience: "Finance team",
	}

	route := Encode(FromForm("7", form))

	parsed, err := url.Parse(route)
	require.NoError(t, err)

	templateID := strings.TrimPrefix(parsed.Path, CanvasPathPrefix)

	payload, err := Decode(templateID, parsed.Query())
	require.NoError(t, err)
	require.NotNil(t, payload)

	assert.Equal(t, "7", payload.TemplateID)
	assert.Equal(t, form.WorkflowName, payload.Name)
	assert.Equal(t, form.Description, payload.Description)
	assert.Equal(t, form.TriggerType, payload.Trigger)
	assert.Equal(t, form.TargetAudience, payload.Audience)
}
