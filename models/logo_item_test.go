package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Categories
		wantErr bool
	}{
		{"single label", `"Library"`, Categories{"Library"}, false},
		{"list", `["Library", "Framework"]`, Categories{"Library", "Framework"}, false},
		{"empty string", `""`, nil, false},
		{"number", `42`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Categories
			err := json.Unmarshal([]byte(tt.input), &c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestLogoItem_Validate(t *testing.T) {
	valid := LogoItem{ID: "react", Title: "React", Path: "/library/react.svg"}
	assert.NoError(t, valid.Validate())

	inline := LogoItem{ID: "react", Title: "React", SVGContent: "<svg/>"}
	assert.NoError(t, inline.Validate())

	assert.Error(t, LogoItem{Title: "React", Path: "/x.svg"}.Validate())
	assert.Error(t, LogoItem{ID: "react", Path: "/x.svg"}.Validate())
	assert.Error(t, LogoItem{ID: "react", Title: "React"}.Validate())
}

func TestLogoItem_HasImage(t *testing.T) {
	assert.True(t, LogoItem{SVGContent: `<?xml version="1.0"?><SVG></SVG>`}.HasImage())
	assert.False(t, LogoItem{SVGContent: "<html>404</html>"}.HasImage())
	assert.False(t, LogoItem{}.HasImage())
}

func TestCategoryID(t *testing.T) {
	assert.Equal(t, "home-automation", CategoryID(" Home Automation "))
	assert.Equal(t, "ai", CategoryID("AI"))
}

func TestLookupCategory(t *testing.T) {
	c, ok := LookupCategory("home-automation")
	require.True(t, ok)
	assert.Equal(t, CategoryHomeAutomation, c)

	assert.True(t, IsKnownCategory("iot"))
	assert.False(t, IsKnownCategory("Gadgets"))
}

func TestNotification_WithDefaults(t *testing.T) {
	n := Notification{Message: "saved"}.WithDefaults()
	assert.Equal(t, DefaultNotificationDurationMS, n.DurationMS)
	assert.Equal(t, NotificationInfo, n.Type)

	custom := Notification{Message: "x", DurationMS: 1000, Type: NotificationError}.WithDefaults()
	assert.Equal(t, NotificationError, custom.Type)
	assert.EqualValues(t, 1000, custom.DurationMS)
}

func TestNotification_DurationIsMillisecondsOnTheWire(t *testing.T) {
	data, err := json.Marshal(Notification{Message: "saved"}.WithDefaults())
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"saved","duration":4200,"type":"info"}`, string(data))
}
