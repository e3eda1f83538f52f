package errors

import (
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind *Error
		err  error
		want bool
	}{
		"instance of the same root": {
			kind: ErrNotFound,
			err:  ErrNotFound,
			want: true,
		},
		"wrapped instance of the same root": {
			kind: ErrNotFound,
			err:  Wrap(ErrNotFound, "vault"),
			want: true,
		},
		"deeply wrapped instance": {
			kind: ErrNotFound,
			err:  Wrap(Wrap(ErrNotFound, "inner"), "outer"),
			want: true,
		},
		"different root": {
			kind: ErrNotFound,
			err:  ErrUnauthorized,
			want: false,
		},
		"wrapped different root": {
			kind: ErrNotFound,
			err:  Wrap(ErrUnauthorized, "vault"),
			want: false,
		},
		"stdlib error": {
			kind: ErrNotFound,
			err:  fmt.Errorf("not found"),
			want: false,
		},
		"nil error": {
			kind: ErrNotFound,
			err:  nil,
			want: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "description"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %v", err)
	}
}

func TestWrapPreservesMessage(t *testing.T) {
	err := Wrap(ErrState, "vault is empty")
	const want = "vault is empty: invalid state"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("reusing an error code must panic")
		}
	}()
	Register(2, "duplicate of unauthorized")
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("totally broken")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want a panic error, got %v", err)
	}
}
