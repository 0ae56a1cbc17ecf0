package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Messages holds the user-facing texts and command aliases. Every field can be
// overridden from the YAML file named by MESSAGES_FILE.
type Messages struct {
	NoEvents   string   `yaml:"no_events"`
	EchoPrefix string   `yaml:"echo_prefix"`
	HelpHeader string   `yaml:"help_header"`
	Weekdays   []string `yaml:"weekdays"` // Sunday first
	DateLayout string   `yaml:"date_layout"`
	TimeLayout string   `yaml:"time_layout"`
	Aliases    Aliases  `yaml:"aliases"`
}

// Aliases maps each command to the token that triggers it.
type Aliases struct {
	List     string `yaml:"list"`
	Register string `yaml:"register"`
	Echo     string `yaml:"echo"`
	Help     string `yaml:"help"`
}

// DefaultMessages returns the built-in texts.
func DefaultMessages() Messages {
	return Messages{
		NoEvents:   "No events scheduled",
		EchoPrefix: "Received command: ",
		HelpHeader: "Available commands:",
		Weekdays:   []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		DateLayout: "02/01/2006",
		TimeLayout: "15:04",
		Aliases: Aliases{
			List:     "/list",
			Register: "/in",
			Echo:     "/l",
			Help:     "/help",
		},
	}
}

// LoadMessages reads a YAML file on top of DefaultMessages.
func LoadMessages(path string) (Messages, error) {
	msgs := DefaultMessages()

	data, err := os.ReadFile(path)
	if err != nil {
		return Messages{}, fmt.Errorf("reading messages file: %w", err)
	}

	if err := yaml.Unmarshal(data, &msgs); err != nil {
		return Messages{}, fmt.Errorf("parsing messages file: %w", err)
	}

	if err := msgs.Validate(); err != nil {
		return Messages{}, fmt.Errorf("invalid messages file %s: %w", path, err)
	}

	return msgs, nil
}

// Validate checks that the texts can be used as-is.
func (m Messages) Validate() error {
	if len(m.Weekdays) != 7 {
		return fmt.Errorf("weekdays must list 7 names, got %d", len(m.Weekdays))
	}
	if m.DateLayout == "" || m.TimeLayout == "" {
		return fmt.Errorf("date_layout and time_layout must not be empty")
	}

	for name, alias := range map[string]string{
		"list":     m.Aliases.List,
		"register": m.Aliases.Register,
		"echo":     m.Aliases.Echo,
		"help":     m.Aliases.Help,
	} {
		if alias == "" || strings.ContainsAny(alias, " \t\n") {
			return fmt.Errorf("alias %s must be a single non-empty token, got %q", name, alias)
		}
	}

	return nil
}
