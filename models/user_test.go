package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_FullName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{name: "first and last", user: User{FirstName: "Азамат", LastName: "Исаев"}, want: "Азамат Исаев"},
		{name: "first only", user: User{FirstName: "Азамат"}, want: "Азамат"},
		{name: "last only", user: User{LastName: "Исаев"}, want: "Исаев"},
		{name: "username fallback", user: User{Username: "azamat"}, want: "@azamat"},
		{name: "nothing", user: User{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.FullName())
		})
	}
}

func TestSubcategories(t *testing.T) {
	assert.Contains(t, Subcategories("Транспорт"), "Курьер")
	assert.Nil(t, Subcategories("Космос"))
}

func TestAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("", " ", "abc123")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())

	var zero AppBuildInfo
	assert.Equal(t, "N/A", zero.BuildVersion())
}
