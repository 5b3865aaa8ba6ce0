package debugctx

import (
	"bytes"
	"context"
	"testing"
)

func TestPrintfWritesOnlyWhenEnabledWithWriter(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	Printf(context.Background(), "dropped %d", 1)

	ctx := WithWriter(context.Background(), out)
	Printf(ctx, "dropped %d", 2)
	if out.Len() != 0 {
		t.Fatalf("expected no output without the enabled flag, got %q", out.String())
	}

	ctx = WithEnabled(ctx, true)
	Printf(ctx, "kept %d", 3)
	if got := out.String(); got != "debug: kept 3\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestPrintfSkipsBlankMessages(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	ctx := WithEnabled(WithWriter(context.Background(), out), true)

	Printf(ctx, "   ")
	if out.Len() != 0 {
		t.Fatalf("expected blank message to be dropped, got %q", out.String())
	}
}
