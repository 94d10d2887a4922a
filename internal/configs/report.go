package configs

import (
	"strings"

	"github.com/ricelabs/rice-cli/internal/ui"
)

// Report renders the configuration for terminal display. URLs are shown
// verbatim (they are not secret); tokens only ever appear through the
// masking choke point in the ui package.
func (c *Config) Report() string {
	var b strings.Builder

	b.WriteString("Storage\n")
	writeServiceLines(&b, c.Storage.Enabled, c.Storage.URL, c.Storage.Token, "User", c.Storage.User)

	b.WriteString("State\n")
	writeServiceLines(&b, c.State.Enabled, c.State.URL, c.State.Token, "Run ID", c.State.RunID)

	return b.String()
}

func writeServiceLines(b *strings.Builder, enabled bool, url, token, extraLabel, extraValue string) {
	if !enabled {
		b.WriteString("  Enabled: no\n")
		return
	}

	b.WriteString("  Enabled: yes\n")
	b.WriteString("  URL:     " + ui.Highlight.Sprint(url) + "\n")

	if extraValue != "" {
		label := extraLabel + ":" + strings.Repeat(" ", 8-len(extraLabel))
		b.WriteString("  " + label + extraValue + "\n")
	}

	if token == "" {
		b.WriteString("  Token:   " + ui.Muted.Sprint("not set") + "\n")
	} else {
		b.WriteString("  Token:   " + ui.MaskSecret(token) + "\n")
	}
}
