package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidExpiry(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "full date", input: "2027-03-31", want: true},
		{name: "month only", input: "2027-03", want: true},
		{name: "surrounding spaces", input: " 2027-03 ", want: true},
		{name: "sentinel not visible", input: "Not visible", want: false},
		{name: "sentinel n/a", input: "N/A", want: false},
		{name: "empty", input: "", want: false},
		{name: "impossible day", input: "2027-02-31", want: false},
		{name: "slashes", input: "03/2027", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidExpiry(tt.input))
		})
	}
}

func TestIsNetworkURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "https", input: "https://cdn.example.com/p/1.jpg", want: true},
		{name: "http", input: "http://example.com/a.png", want: true},
		{name: "file scheme", input: "file:///data/user/0/photo.jpg", want: false},
		{name: "content scheme", input: "content://media/external/images/1", want: false},
		{name: "bare path", input: "/storage/emulated/0/DCIM/a.jpg", want: false},
		{name: "no host", input: "https:///a.jpg", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNetworkURL(tt.input))
		})
	}
}

func TestFields_Clean(t *testing.T) {
	f := Fields{
		Name:     "  Aspirin ",
		Dose:     "500 mg",
		Form:     "tablet",
		Expiry:   "Not visible",
		PhotoURI: "file:///data/photo.jpg",
	}

	cleaned := f.Clean()

	assert.Equal(t, "Aspirin", cleaned.Name)
	assert.Equal(t, "500 mg", cleaned.Dose)
	assert.Equal(t, "tablet", cleaned.Form)
	assert.Empty(t, cleaned.Expiry)
	assert.Empty(t, cleaned.PhotoURI)

	// исходная структура не изменяется
	assert.Equal(t, "Not visible", f.Expiry)
}

func TestMergeRemote(t *testing.T) {
	local := Fields{Name: "Aspirin", PhotoURI: "file:///data/photo.jpg"}

	t.Run("non-url remote photo keeps local photo", func(t *testing.T) {
		merged := MergeRemote(local, Fields{Name: "Aspirin Cardio", PhotoURI: "photo.jpg"})
		assert.Equal(t, "Aspirin Cardio", merged.Name)
		assert.Equal(t, "file:///data/photo.jpg", merged.PhotoURI)
	})

	t.Run("empty remote photo keeps local photo", func(t *testing.T) {
		merged := MergeRemote(local, Fields{Name: "Aspirin"})
		assert.Equal(t, "file:///data/photo.jpg", merged.PhotoURI)
	})

	t.Run("network remote photo wins", func(t *testing.T) {
		merged := MergeRemote(local, Fields{Name: "Aspirin", PhotoURI: "https://cdn.example.com/1.jpg"})
		assert.Equal(t, "https://cdn.example.com/1.jpg", merged.PhotoURI)
	})

	t.Run("non-url remote photo with empty local is dropped", func(t *testing.T) {
		merged := MergeRemote(Fields{Name: "Aspirin"}, Fields{Name: "Aspirin", PhotoURI: "/tmp/a.jpg"})
		assert.Empty(t, merged.PhotoURI)
	})
}

func TestDiffersFromRemote(t *testing.T) {
	tests := []struct {
		name   string
		local  Fields
		remote Fields
		want   bool
	}{
		{
			name:   "identical",
			local:  Fields{Name: "Ibuprofen", Dose: "200 mg"},
			remote: Fields{Name: "Ibuprofen", Dose: "200 mg"},
			want:   false,
		},
		{
			name:   "sentinel expiry stripped on upload is not a difference",
			local:  Fields{Name: "Ibuprofen", Expiry: "Not visible"},
			remote: Fields{Name: "Ibuprofen"},
			want:   false,
		},
		{
			name:   "local photo path stripped on upload is not a difference",
			local:  Fields{Name: "Ibuprofen", PhotoURI: "file:///a.jpg"},
			remote: Fields{Name: "Ibuprofen"},
			want:   false,
		},
		{
			name:   "remote rename",
			local:  Fields{Name: "Ibuprofen"},
			remote: Fields{Name: "Ibuprofen Forte"},
			want:   true,
		},
		{
			name:   "remote expiry set",
			local:  Fields{Name: "Ibuprofen"},
			remote: Fields{Name: "Ibuprofen", Expiry: "2027-01"},
			want:   true,
		},
		{
			name:   "remote photo url set",
			local:  Fields{Name: "Ibuprofen", PhotoURI: "file:///a.jpg"},
			remote: Fields{Name: "Ibuprofen", PhotoURI: "https://cdn.example.com/a.jpg"},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiffersFromRemote(tt.local, tt.remote))
		})
	}
}

func TestRecord_IsPending(t *testing.T) {
	r := &Record{}
	assert.True(t, r.IsPending())

	id := int64(501)
	r.RemoteID = &id
	assert.False(t, r.IsPending())
}
