package tui

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/okugula/work-kg-admin/internal/adapter"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "fits", in: "Ош", max: 5, want: "Ош"},
		{name: "cyrillic is cut by rune", in: "Строительство", max: 8, want: "Строи..."},
		{name: "tiny width has no ellipsis", in: "Бишкек", max: 2, want: "Би"},
		{name: "zero width keeps value", in: "Бишкек", max: 0, want: "Бишкек"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestCell_PadsToWidth(t *testing.T) {
	assert.Equal(t, 10, lipgloss.Width(cell("Ош", 10)))
	assert.Equal(t, 10, lipgloss.Width(cell("Очень длинное название", 10)))
	assert.Equal(t, "-   ", cell("", 4))
	assert.Equal(t, "a b ", cell("a\nb", 4))
}

func TestVisibleRange(t *testing.T) {
	from, to := visibleRange(5, 3, 10)
	assert.Equal(t, 0, from)
	assert.Equal(t, 5, to)

	from, to = visibleRange(100, 0, 10)
	assert.Equal(t, 0, from)
	assert.Equal(t, 10, to)

	from, to = visibleRange(100, 50, 10)
	assert.Equal(t, 45, from)
	assert.Equal(t, 55, to)

	from, to = visibleRange(100, 99, 10)
	assert.Equal(t, 90, from)
	assert.Equal(t, 100, to)
}

func TestHumanizeServerUnavailableError(t *testing.T) {
	assert.Empty(t, humanizeServerUnavailableError(nil))
	assert.Equal(t, "Отсутствует сеть или Сервер недоступен",
		humanizeServerUnavailableError(errors.New(`Post "http://localhost/api/auth/login": dial tcp: connection refused`)))
	assert.Equal(t, "Сервер вернул некорректный ответ",
		humanizeServerUnavailableError(fmt.Errorf("get jobs: %w", adapter.ErrDecodeResponse)))
	assert.Equal(t, "Invalid credentials",
		humanizeServerUnavailableError(&adapter.RequestError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}))
}

func TestIsSessionExpired(t *testing.T) {
	unauthorized := &adapter.RequestError{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"}

	assert.True(t, isSessionExpired(unauthorized))
	assert.True(t, isSessionExpired(errors.Join(fmt.Errorf("load jobs: %w", unauthorized), errors.New("other"))))
	assert.False(t, isSessionExpired(&adapter.RequestError{StatusCode: http.StatusInternalServerError}))
	assert.False(t, isSessionExpired(nil))
}
