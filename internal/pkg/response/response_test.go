package response

import (
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestDefaultMessageForStatus(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{fiber.StatusOK, MessageOK},
		{fiber.StatusBadRequest, MessageBadRequest},
		{fiber.StatusNotFound, MessageNotFound},
		{fiber.StatusInternalServerError, MessageInternalServerError},
		{fiber.StatusBadGateway, MessageInternalServerError},
		{fiber.StatusTeapot, MessageError},
	}
	for _, tc := range cases {
		if got := defaultMessageForStatus(tc.status); got != tc.want {
			t.Fatalf("status %d: got %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestNormalizeStatus(t *testing.T) {
	if got := normalizeStatus(0); got != fiber.StatusInternalServerError {
		t.Fatalf("out-of-range status must normalize to 500, got %d", got)
	}
	if got := normalizeStatus(204); got != 204 {
		t.Fatalf("valid status must pass through, got %d", got)
	}
}
