package wizard

import (
	"fmt"

	"github.com/ricelabs/rice-cli/internal/configs"
	ricerrors "github.com/ricelabs/rice-cli/internal/errors"
	"github.com/ricelabs/rice-cli/internal/ui"

	"github.com/google/uuid"
)

// Fallback defaults offered when no prior value exists.
const (
	defaultInstanceURL = "localhost:50051"
	defaultStorageUser = "admin"
)

// Run walks the operator through both services in one pass and returns the
// finished configuration. Prompts are pre-filled from seed; an empty answer
// keeps the seeded value, except the enable questions which require an
// explicit yes or no. Disabling a service discards its seeded fields.
//
// Returns ErrNoServicesEnabled when the operator disables both services;
// the caller should write nothing in that case.
func Run(p Prompter, seed configs.Config) (configs.Config, error) {
	cfg := configs.Config{}

	storageEnabled, err := p.Confirm("Enable Rice Storage?")
	if err != nil {
		return cfg, err
	}
	if storageEnabled {
		if err := askStorage(p, seed.Storage, &cfg.Storage); err != nil {
			return cfg, err
		}
	}

	stateEnabled, err := p.Confirm("Enable Rice State (AI agent memory)?")
	if err != nil {
		return cfg, err
	}
	if stateEnabled {
		if err := askState(p, seed.State, &cfg.State); err != nil {
			return cfg, err
		}
	}

	if !cfg.AnyEnabled() {
		return cfg, ricerrors.ErrNoServicesEnabled
	}
	return cfg, nil
}

func askStorage(p Prompter, seed configs.StorageConfig, out *configs.StorageConfig) error {
	out.Enabled = true

	url, err := requireInput(p, "Storage instance URL", fallback(seed.URL, defaultInstanceURL))
	if err != nil {
		return err
	}
	out.URL = url

	user, err := p.Input("Storage user", fallback(seed.User, defaultStorageUser))
	if err != nil {
		return err
	}
	out.User = user

	token, err := askToken(p, "Storage auth token", seed.Token)
	if err != nil {
		return err
	}
	out.Token = token
	return nil
}

func askState(p Prompter, seed configs.StateConfig, out *configs.StateConfig) error {
	out.Enabled = true

	url, err := requireInput(p, "State instance URL", fallback(seed.URL, defaultInstanceURL))
	if err != nil {
		return err
	}
	out.URL = url

	runID, err := p.Input("State run ID", fallback(seed.RunID, uuid.New().String()))
	if err != nil {
		return err
	}
	out.RunID = runID

	token, err := askToken(p, "State auth token", seed.Token)
	if err != nil {
		return err
	}
	out.Token = token
	return nil
}

// requireInput re-prompts until it has a non-empty answer. No format
// checking beyond that: whether the URL actually works is the health
// check's job, not the wizard's.
func requireInput(p Prompter, prompt, def string) (string, error) {
	for {
		answer, err := p.Input(prompt, def)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		fmt.Println(ui.Warning.Sprint("A value is required."))
	}
}

// askToken prompts for a token, showing only the masked current value. An
// empty answer keeps the seeded token.
func askToken(p Prompter, prompt, current string) (string, error) {
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, ui.MaskSecret(current))
	} else {
		prompt = fmt.Sprintf("%s %s", prompt, ui.Muted.Sprint("optional"))
	}

	answer, err := p.Secret(prompt)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
