package session

import (
	"testing"

	"github.com/MKhiriev/go-recipe-book/models"
	"github.com/stretchr/testify/assert"
)

func TestGuard(t *testing.T) {
	tests := []struct {
		status models.SessionStatus
		want   Decision
	}{
		{models.SessionInitializing, DecisionLoading},
		{models.SessionAuthenticated, DecisionRender},
		{models.SessionAnonymous, DecisionRedirect},
		{models.SessionStatus(42), DecisionRedirect},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Guard(tt.status))
		})
	}
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "loading", DecisionLoading.String())
	assert.Equal(t, "render", DecisionRender.String())
	assert.Equal(t, "redirect", DecisionRedirect.String())
}
