package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_Run(t *testing.T) {
	tests := []struct {
		name    string
		fnErr   error
		wantErr bool
	}{
		{name: "success"},
		{name: "error is returned", fnErr: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			called := false
			err := NewSpinner(&buf, "Analyzing").Run(context.Background(), func(context.Context) error {
				called = true
				return tt.fnErr
			})

			assert.True(t, called)
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.fnErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSpinner_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "value")

	var got any
	err := NewSpinner(&bytes.Buffer{}, "Analyzing").Run(ctx, func(ctx context.Context) error {
		got = ctx.Value(key{})
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "value", got)
}
