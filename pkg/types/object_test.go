package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testObject struct {
	id   LrID
	uuid string
}

func (o testObject) ID() LrID      { return o.id }
func (o testObject) UUID() string { return o.uuid }

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		obj  testObject
		want error
	}{
		{"valid", testObject{12, "6C8E6F5D-1A2B-4C3D-9E8F-0A1B2C3D4E5F"}, nil},
		{"lowercase", testObject{1, "6c8e6f5d-1a2b-4c3d-9e8f-0a1b2c3d4e5f"}, nil},
		{"zero id", testObject{0, "6C8E6F5D-1A2B-4C3D-9E8F-0A1B2C3D4E5F"}, ErrInvalidID},
		{"negative id", testObject{-3, "6C8E6F5D-1A2B-4C3D-9E8F-0A1B2C3D4E5F"}, ErrInvalidID},
		{"empty uuid", testObject{1, ""}, ErrInvalidUUID},
		{"garbage uuid", testObject{1, "not-a-uuid"}, ErrInvalidUUID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.obj)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
