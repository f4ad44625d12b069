package logchain

import (
	"context"
	"testing"
)

func TestKind_Renderable(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindWarning, true},
		{KindError, true},
		{KindFatalError, false},
		{KindUnknownMessage, false},
		{Kind("made_up"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.Renderable(); got != tt.want {
				t.Errorf("Renderable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessage_Render_FixedLiterals(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindWarning, "warning"},
		{KindError, "Error"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			sink := &testSink{}
			msg := Message{Kind: tt.kind}

			text, err := msg.Render(context.Background(), sink)
			if err != nil {
				t.Fatalf("Render returned error: %v", err)
			}
			if text != tt.want {
				t.Errorf("Render text = %q, want %q", text, tt.want)
			}
			if len(sink.lines) != 1 || sink.lines[0] != tt.want {
				t.Errorf("Sink received %v, want exactly one write of %q", sink.lines, tt.want)
			}
		})
	}
}

func TestMessage_Render_FatalNeverWrites(t *testing.T) {
	sink := &testSink{}
	msg := Message{Kind: KindFatalError}

	_, err := msg.Render(context.Background(), sink)
	if !IsFatal(err) {
		t.Fatalf("Render error = %v, want FatalFailure", err)
	}
	if len(sink.lines) != 0 {
		t.Errorf("Fatal render wrote %v, want no writes", sink.lines)
	}
}

func TestMessage_Render_UnknownNeverWrites(t *testing.T) {
	sink := &testSink{}
	msg := Message{Kind: KindUnknownMessage}

	_, err := msg.Render(context.Background(), sink)
	if !IsUnknown(err) {
		t.Fatalf("Render error = %v, want UnknownFailure", err)
	}
	if len(sink.lines) != 0 {
		t.Errorf("Unknown render wrote %v, want no writes", sink.lines)
	}
}

func TestMessage_Render_FailingKindsIgnoreSink(t *testing.T) {
	// Fatal and Unknown fail even with no sink at all.
	msg := Message{Kind: KindFatalError}
	if _, err := msg.Render(context.Background(), nil); !IsFatal(err) {
		t.Errorf("Render error = %v, want FatalFailure", err)
	}

	msg = Message{Kind: KindUnknownMessage}
	if _, err := msg.Render(context.Background(), nil); !IsUnknown(err) {
		t.Errorf("Render error = %v, want UnknownFailure", err)
	}
}

func TestMessage_Render_NilSinkForRenderableKind(t *testing.T) {
	msg := Message{Kind: KindWarning}

	_, err := msg.Render(context.Background(), nil)
	if err == nil {
		t.Fatal("Render with nil sink should return an error")
	}
	if IsFatal(err) || IsUnknown(err) || IsUnhandled(err) {
		t.Errorf("nil-sink error %v must not be a dispatch failure", err)
	}
}

func TestMessage_Render_UnrecognizedKind(t *testing.T) {
	msg := Message{Kind: Kind("made_up")}

	_, err := msg.Render(context.Background(), &testSink{})
	if err == nil {
		t.Fatal("Render of an unrecognized kind should return an error")
	}
}
