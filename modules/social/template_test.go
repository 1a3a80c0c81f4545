package social

import "testing"

func TestResolveBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "full name placeholder",
			body: PlaceholderFullName + " liked your task \"Ship it\"",
			want: "Alice Johnson liked your task \"Ship it\"",
		},
		{
			name: "username placeholder",
			body: "New follower: @" + PlaceholderUsername,
			want: "New follower: @alice",
		},
		{
			name: "first name placeholder",
			body: PlaceholderName + " says hi",
			want: "Alice says hi",
		},
		{
			name: "multiple placeholders",
			body: PlaceholderFullName + " (@" + PlaceholderUsername + ") started following you",
			want: "Alice Johnson (@alice) started following you",
		},
		{
			name: "no placeholders",
			body: "You completed \"Ship it\"",
			want: "You completed \"Ship it\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveBody(tt.body, "alice", "Alice", "Alice Johnson")
			if got != tt.want {
				t.Errorf("ResolveBody() = %q, want %q", got, tt.want)
			}
		})
	}
}
