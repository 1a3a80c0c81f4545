package social

import "strings"

// Actor placeholders understood by notification bodies. They are stored
// verbatim and substituted at read time with the actor's current profile,
// so a renamed user retroactively changes historic notification text.
const (
	PlaceholderUsername = "{actor_username}"
	PlaceholderName     = "{actor_name}"
	PlaceholderFullName = "{actor_full_name}"
)

// ResolveBody substitutes actor placeholders in a notification body.
func ResolveBody(body, username, firstName, fullName string) string {
	return strings.NewReplacer(
		PlaceholderUsername, username,
		PlaceholderName, firstName,
		PlaceholderFullName, fullName,
	).Replace(body)
}
