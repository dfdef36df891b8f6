package config

import (
	"fmt"
	"os"

	gotoml "github.com/pelletier/go-toml/v2"
)

const templateHeader = `# xcmtrace configuration
#
# decode.max_depth         nesting limit for instruction sequences (1-65536)
# decode.max_instructions  per-sequence cap for v3 messages (0 disables)
# decode.strict            reject bytes left after the message
# output.format            text | json | yaml
# log.level                trace | debug | info | warn | error | off

`

// Template renders the default configuration as TOML.
func Template() (string, error) {
	body, err := gotoml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("config template: %w", err)
	}
	return templateHeader + string(body), nil
}

func WriteTemplate(path string, overwrite bool) error {
	template, err := Template()
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}
