package product

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestInvalidTextRepr(t *testing.T) {
	if !invalidTextRepr(&pgconn.PgError{Code: "22P02"}) {
		t.Fatal("expected 22P02 to be treated as not found")
	}
	wrapped := fmt.Errorf("query product: %w", &pgconn.PgError{Code: "22P02"})
	if !invalidTextRepr(wrapped) {
		t.Fatal("expected wrapped 22P02 to be treated as not found")
	}
	if invalidTextRepr(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("unique violation must not be treated as not found")
	}
	if invalidTextRepr(errors.New("connection refused")) {
		t.Fatal("plain errors must not be treated as not found")
	}
}
