package entity

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAddress_Validate(t *testing.T) {
	valid := func() *Address {
		return &Address{ID: "a1", Name: "Cafe", Latitude: 25.03, Longitude: 121.56, User: "a@x.com"}
	}

	tests := []struct {
		name    string
		mutate  func(*Address)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Address) {}},
		{name: "missing id", mutate: func(a *Address) { a.ID = "" }, wantErr: true},
		{name: "blank name", mutate: func(a *Address) { a.Name = "  " }, wantErr: true},
		{name: "missing owner", mutate: func(a *Address) { a.User = "" }, wantErr: true},
		{name: "missing latitude", mutate: func(a *Address) { a.Latitude = math.NaN() }, wantErr: true},
		{name: "missing longitude", mutate: func(a *Address) { a.Longitude = math.NaN() }, wantErr: true},
		{name: "latitude out of range", mutate: func(a *Address) { a.Latitude = -90.5 }, wantErr: true},
		{name: "longitude out of range", mutate: func(a *Address) { a.Longitude = 180.01 }, wantErr: true},
		{name: "edge coordinates", mutate: func(a *Address) { a.Latitude, a.Longitude = 90, -180 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			address := valid()
			tt.mutate(address)

			err := address.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrMalformedRecord), "got %v", err)

				return
			}
			assert.NoError(t, err)
		})
	}
}
