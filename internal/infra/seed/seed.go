// Package seed loads the pre-approved reseller allowlist. The allowlist
// is immutable reference data: it is read from a YAML file at startup
// and never written through the API.
package seed

import (
	"os"

	"cashback-tracker/internal/pkg/cpf"
	"cashback-tracker/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

type allowlistFile struct {
	PreApproved []string `yaml:"pre_approved"`
}

// LoadPreApproved reads and validates the allowlist file. A missing file
// is not an error; it yields an empty allowlist.
func LoadPreApproved(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to read pre-approved allowlist")
	}

	var file allowlistFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errs.Wrap(err, "failed to parse pre-approved allowlist")
	}

	cpfs := make([]string, 0, len(file.PreApproved))
	for _, entry := range file.PreApproved {
		normalized, err := cpf.Normalize(entry)
		if err != nil {
			return nil, errs.Wrap(err, "invalid cpf in pre-approved allowlist: "+entry)
		}
		cpfs = append(cpfs, normalized)
	}

	return cpfs, nil
}
