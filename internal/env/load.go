package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Load loads the environments of the workspace directory.
//
// If http-client.env.json exists it is the source of truth, a private file next to
// it contributes private variables (and environments only it defines) but is skipped
// if it cannot be parsed. Failing that a lone private file is used with all its
// variables private, then a .env file. A workspace with none of these has an empty
// [Config] and no error.
func Load(workspace string) (Config, error) {
	publicPath := filepath.Join(workspace, PublicFile)
	privatePath := filepath.Join(workspace, PrivateFile)
	dotEnvPath := filepath.Join(workspace, DotEnvFile)

	public, err := exists(publicPath)
	if err != nil {
		return Config{}, err
	}

	private, err := exists(privatePath)
	if err != nil {
		return Config{}, err
	}

	switch {
	case public:
		config, err := parseFile(publicPath)
		if err != nil {
			return Config{}, err
		}

		if private {
			if privateConfig, err := parseFile(privatePath); err == nil {
				mergePrivate(&config, privateConfig)
			}
		}

		return config, nil
	case private:
		privateConfig, err := parseFile(privatePath)
		if err != nil {
			return Config{}, err
		}

		config := Config{
			Shared:        make(map[string]string),
			PrivateShared: privateConfig.Shared,
		}

		for _, environment := range privateConfig.Environments {
			config.Environments = append(config.Environments, Environment{
				Name:      environment.Name,
				Variables: make(map[string]string),
				Private:   environment.Variables,
				Source:    environment.Source,
			})
		}

		return config, nil
	}

	content, err := os.ReadFile(dotEnvPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}

		return Config{}, fmt.Errorf("could not read %s: %w", dotEnvPath, err)
	}

	return Config{
		Environments: []Environment{
			{
				Name:      DefaultName,
				Variables: ParseDotEnv(string(content)),
				Source:    dotEnvPath,
			},
		},
	}, nil
}

// mergePrivate folds a parsed private env file into config.
func mergePrivate(config *Config, private Config) {
	for _, environment := range private.Environments {
		found := false

		for index := range config.Environments {
			if config.Environments[index].Name == environment.Name {
				config.Environments[index].Private = environment.Variables
				found = true

				break
			}
		}

		if !found {
			config.Environments = append(config.Environments, Environment{
				Name:      environment.Name,
				Variables: make(map[string]string),
				Private:   environment.Variables,
				Source:    environment.Source,
			})
		}
	}

	config.PrivateShared = private.Shared

	sortEnvironments(config.Environments)
}

// parseFile opens and parses an env json file.
func parseFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not open env file: %w", err)
	}
	defer f.Close()

	return ParseHTTPClientEnv(f, path)
}

// exists reports whether a regular file exists at path.
func exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("could not stat %s: %w", path, err)
	}

	return !info.IsDir(), nil
}
