package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateCoordinate tests coordinate validation
func TestValidateCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		wantErr bool
	}{
		{"origin", 0, 0, false},
		{"large", 1e300, -1e300, false},
		{"nan x", math.NaN(), 0, true},
		{"nan y", 0, math.NaN(), true},
		{"inf x", math.Inf(1), 0, true},
		{"neg inf y", 0, math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinate(tt.x, tt.y)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSites(t *testing.T) {
	tests := []struct {
		name    string
		sites   []Site
		wantErr string
	}{
		{"empty", nil, "empty"},
		{"single", []Site{{ID: 1, X: 1, Y: 2}}, ""},
		{"coincident allowed", []Site{{ID: 1}, {ID: 2}}, ""},
		{"duplicate id", []Site{{ID: 1, X: 1}, {ID: 1, X: 2}}, "site id 1"},
		{"not finite", []Site{{ID: 3, X: math.NaN()}}, "not finite"},
		{"synthetic", []Site{{ID: 4, Synthetic: true}}, "synthetic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSites(tt.sites)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var inputErr *InputError
			assert.True(t, errors.As(err, &inputErr))
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDegenerateErrorMessage(t *testing.T) {
	err := error(&DegenerateError{Sites: 2, Reason: "fewer than 3 distinct sites"})
	assert.Equal(t, "degenerate geometry (2 sites): fewer than 3 distinct sites", err.Error())
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestBBox(t *testing.T) {
	b := BoundsOf([]Site{{X: 1, Y: 5}, {X: -2, Y: 3}, {X: 4, Y: -1}})
	assert.Equal(t, BBox{MinX: -2, MinY: -1, MaxX: 4, MaxY: 5}, b)
	assert.Equal(t, 6.0, b.Width())
	assert.Equal(t, 6.0, b.Height())

	e := b.Expand(1)
	assert.Equal(t, BBox{MinX: -3, MinY: -2, MaxX: 5, MaxY: 6}, e)
	assert.True(t, e.Contains(Point{X: 5, Y: 6}))
	assert.False(t, e.Contains(Point{X: 5.1, Y: 0}))

	assert.Equal(t, BBox{}, BoundsOf(nil))
}
