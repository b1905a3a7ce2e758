// Package properties reads Java-style .properties files used by the Android
// root project (key.properties, local.properties).
package properties

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"

	"github.com/ochairo/droidspec/internal/domain/entities"
)

// Recognized keys of the credentials file
const (
	KeyAlias      = "keyAlias"
	KeyPassword   = "keyPassword"
	StoreFile     = "storeFile"
	StorePassword = "storePassword"
)

// ErrMissingCredentialKeys is returned when a credentials file exists but
// lacks one of the recognized keys
var ErrMissingCredentialKeys = errors.New("credentials file is missing keys")

// load reads path the way java.util.Properties.load does: ISO-8859-1 and
// no ${...} expansion
func load(path string) (*properties.Properties, error) {
	loader := properties.Loader{
		Encoding:         properties.ISO_8859_1,
		DisableExpansion: true,
	}
	p, err := loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read properties %s: %w", path, err)
	}
	return p, nil
}

// LoadCredentials reads signing credentials from path. A missing file is not
// an error: it yields nil credentials. A relative storeFile is resolved
// against storeBase.
func LoadCredentials(path, storeBase string) (*entities.SigningCredentials, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	p, err := load(path)
	if err != nil {
		return nil, err
	}

	var missing []string
	get := func(key string) string {
		v, ok := p.Get(key)
		if !ok {
			missing = append(missing, key)
		}
		return v
	}

	creds := &entities.SigningCredentials{
		KeyAlias:      get(KeyAlias),
		KeyPassword:   get(KeyPassword),
		StoreFile:     get(StoreFile),
		StorePassword: get(StorePassword),
		Source:        path,
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s (%s)", ErrMissingCredentialKeys, path, strings.Join(missing, ", "))
	}

	if creds.StoreFile != "" && !filepath.IsAbs(creds.StoreFile) {
		creds.StoreFile = filepath.Join(storeBase, creds.StoreFile)
	}

	return creds, nil
}

// LoadLocal reads local.properties. A missing file yields an empty map.
func LoadLocal(path string) (map[string]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return map[string]string{}, nil
	}

	p, err := load(path)
	if err != nil {
		return nil, err
	}
	return p.Map(), nil
}
