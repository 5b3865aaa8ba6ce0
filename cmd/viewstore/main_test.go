package main

import "testing"

func TestContextNameFromArgs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"resource", "list", "--context", "prod"}, "prod"},
		{[]string{"resource", "list", "-c", "dev"}, "dev"},
		{[]string{"resource", "list", "--context=staging"}, "staging"},
		{[]string{"resource", "list", "--context"}, ""},
		{[]string{"resource", "list"}, ""},
	}

	for _, tc := range cases {
		if got := contextNameFromArgs(tc.args); got != tc.want {
			t.Fatalf("contextNameFromArgs(%v) = %q, want %q", tc.args, got, tc.want)
		}
	}
}

func TestShouldSkipContextBootstrap(t *testing.T) {
	t.Parallel()

	skip := [][]string{
		{},
		{"help"},
		{"--help"},
		{"config", "list"},
		{"version"},
		{"completion", "bash"},
		{"__complete", "resource", ""},
	}
	for _, args := range skip {
		if !shouldSkipContextBootstrap(args) {
			t.Fatalf("expected bootstrap skip for %v", args)
		}
	}

	for _, args := range [][]string{{"resource", "list"}, {"resource", "get", "w1"}} {
		if shouldSkipContextBootstrap(args) {
			t.Fatalf("expected bootstrap for %v", args)
		}
	}
}
