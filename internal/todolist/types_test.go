package todolist_test

import (
	"errors"
	"testing"

	"todolist-sync/internal/todolist"
)

func TestRequireNonBlank(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		wantErr bool
	}{
		{"all set", []string{"title", "Groceries", "description", "milk"}, false},
		{"empty", []string{"title", ""}, true},
		{"whitespace only", []string{"title", "ok", "description", "  \t"}, true},
		{"nothing to check", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := todolist.RequireNonBlank(tt.pairs...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, todolist.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}
