package predicate

import (
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	humanize "github.com/dustin/go-humanize"
	"github.com/ferret/ferret/internal/fsmeta"
)

// namePatterns is the fixed catalog of credential-looking names, matched
// case-insensitively against the base name only. Content is never inspected.
var namePatterns = []string{
	"passwd",
	"shadow",
	"*id_rsa*",
	"*id_dsa*",
	"*id_ecdsa*",
	"*id_ed25519*",
	"*.pem",
	"*.ppk",
	"*.env",
	".env*",
	".bashrc",
	".zshrc",
	".bash_history",
	".netrc",
	".pgpass",
	".git-credentials",
	"htpasswd",
	"credentials*",
	"*.kdbx",
	"*.keystore",
	"*.jks",
	"*.p12",
	"*.pfx",
	"wp-config.php",
}

// configExtensions is the fixed extension set reported regardless of name.
var configExtensions = map[string]bool{
	".conf": true,
	".cfg":  true,
	".ini":  true,
	".yaml": true,
	".json": true,
	".crt":  true,
	".key":  true,
}

// Configs matches entries whose name looks like a credential, key, or
// configuration file. Extra appends caller-supplied glob patterns to the
// built-in catalog.
type Configs struct {
	Extra []string
}

func (Configs) ID() string { return "configs" }

func (c Configs) Evaluate(e *fsmeta.Entry) Outcome {
	if e.Kind != fsmeta.KindFile {
		return None()
	}
	name := strings.ToLower(e.Name)
	if configExtensions[filepath.Ext(name)] {
		return Match(humanize.IBytes(uint64(e.Size)))
	}
	for _, pat := range namePatterns {
		if ok, _ := doublestar.Match(pat, name); ok {
			return Match(humanize.IBytes(uint64(e.Size)))
		}
	}
	for _, pat := range c.Extra {
		if ok, _ := doublestar.Match(strings.ToLower(pat), name); ok {
			return Match(humanize.IBytes(uint64(e.Size)))
		}
	}
	return None()
}
