package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestMissingReference_WrapsDetail(t *testing.T) {
	err := fmt.Errorf("%w: item %d does not exist", ErrMissingReference, 999)
	if !errors.Is(err, ErrMissingReference) {
		t.Fatal("errors.Is must match wrapped ErrMissingReference")
	}
	if errors.Is(err, ErrOrderNotFound) {
		t.Fatal("a missing reference is not a missing order")
	}
	if err.Error() != "missing reference: item 999 does not exist" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
