package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectiveConstructors(t *testing.T) {
	assert.Equal(t, Directive{Kind: DirectiveContinue}, Continue())
	assert.Equal(t, Directive{Kind: DirectiveUpdate, Text: "narrower"}, Update("narrower"))
	assert.Equal(t, Directive{Kind: DirectiveFeedback, Text: "skip it"}, Feedback("skip it"))
}

func TestDirectiveValidate(t *testing.T) {
	tests := []struct {
		name      string
		directive Directive
		wantErr   bool
	}{
		{"continue", Continue(), false},
		{"update", Update("x"), false},
		{"feedback", Feedback("y"), false},
		{"empty kind", Directive{}, true},
		{"unknown kind", Directive{Kind: "approve"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.directive.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDirective)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
