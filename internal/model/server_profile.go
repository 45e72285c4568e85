package model

import "time"

// ServerProfile holds a server's stored display overrides. Nil fields are unset
// and resolve to the process-wide defaults.
type ServerProfile struct {
	GuildID      string
	DateFormat   *string
	DateLanguage *string
	Timezone     *string
	UpdatedAt    time.Time
}
