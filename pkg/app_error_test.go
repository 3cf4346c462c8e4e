package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected message: %s", e.Error())
	}
	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	s := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	if s.HTTPStatus != http.StatusNotFound || s.Error() != "NOT_FOUND: Not found" {
		t.Fatalf("unexpected simple error: %+v", s)
	}
}
