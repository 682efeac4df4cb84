package link

import "testing"

func TestVideoID(t *testing.T) {
	cases := []struct {
		url  string
		want string
		ok   bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?list=x&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://example.com/video", "", false},
	}
	for _, tc := range cases {
		got, ok := VideoID(tc.url)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("VideoID(%q) = %q, %v", tc.url, got, ok)
		}
	}
}

func TestTimestamped(t *testing.T) {
	got := Timestamped("https://youtu.be/dQw4w9WgXcQ", "00:09:54")
	want := "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=594"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestTimestampedPassThrough(t *testing.T) {
	if got := Timestamped("https://example.com/video", "00:09:54"); got != "https://example.com/video" {
		t.Fatalf("unextractable URLs must pass through, got %s", got)
	}
	if got := Timestamped("", "00:09:54"); got != "" {
		t.Fatalf("blank URL must stay blank")
	}
}
