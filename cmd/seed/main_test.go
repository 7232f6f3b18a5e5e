package main

import (
	"reflect"
	"testing"
)

func TestCompanyNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "default", args: nil, want: []string{"acme"}},
		{name: "lowercased and deduped", args: []string{"ACME", " Globex ", "acme", ""}, want: []string{"acme", "globex"}},
	}

	for _, tt := range tests {
		if got := companyNames(tt.args); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
